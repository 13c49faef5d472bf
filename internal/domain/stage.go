package domain

// Fulfillment stages, in their natural order.
const (
	StageSearch       = "search"
	StageAuction      = "auction"
	StageShipping     = "shipping"
	StageCustoms      = "customs"
	StageRegistration = "registration"
)

var StageLabels = map[string]string{
	StageSearch:       "Подбор",
	StageAuction:      "Торг/Покупка",
	StageShipping:     "Доставка",
	StageCustoms:      "Таможня",
	StageRegistration: "Постановка на учет",
}

// StageOrder lists the stages in fulfillment sequence, for seeding and display.
var StageOrder = []string{StageSearch, StageAuction, StageShipping, StageCustoms, StageRegistration}

func ValidStage(s string) bool { _, ok := StageLabels[s]; return ok }

// OrderStage is one fulfillment phase of an order. UpdatedDate is refreshed
// by the repository on every save.
type OrderStage struct {
	ID          string `db:"id"`
	OrderID     string `db:"order_id"`
	StageName   string `db:"stage_name"`
	Completed   bool   `db:"completed"`
	Comments    string `db:"comments"`
	UpdatedDate string `db:"updated_date"`
}

func (s OrderStage) StageLabel() string { return StageLabels[s.StageName] }
