package domain

type ChartKind string

const (
	KindPie       ChartKind = "pie"
	KindScatter   ChartKind = "scatter"
	KindBar       ChartKind = "bar"
	KindHistogram ChartKind = "histogram"
)

type ChartID string

const (
	ChartGenderDistribution ChartID = "gender-distribution"
	ChartSpendVsRating      ChartID = "spend-vs-rating"
	ChartRatingVsSatisfied  ChartID = "rating-vs-satisfaction"
	ChartSpendVsAge         ChartID = "spend-vs-age"
	ChartRatingHistogram    ChartID = "rating-histogram"
	ChartRecencyHistogram   ChartID = "recency-histogram"
	ChartItemsHistogram     ChartID = "items-histogram"
	ChartMembership         ChartID = "membership-histogram"
)

// ChartIDs lists every chart in page order.
var ChartIDs = []ChartID{
	ChartGenderDistribution,
	ChartSpendVsRating,
	ChartRatingVsSatisfied,
	ChartSpendVsAge,
	ChartRatingHistogram,
	ChartRecencyHistogram,
	ChartItemsHistogram,
	ChartMembership,
}

func (id ChartID) Valid() bool {
	for _, c := range ChartIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Filtered reports whether the chart follows the gender selector.
func (id ChartID) Filtered() bool {
	return id == ChartSpendVsRating || id == ChartRatingVsSatisfied
}

type BarMode string

const (
	BarModeGroup   BarMode = "group"
	BarModeStack   BarMode = "stack"
	BarModeOverlay BarMode = "overlay"
)

type Legend struct {
	Orientation string // "h" or "v"
	Anchor      string // "bottom", "top"
	Title       string
	Reversed    bool // trace order
}

type Axis struct {
	Title      string
	Categories []string // set when the axis is categorical, in display order
}

type Point struct {
	X     float64
	Y     float64
	Label string // category or slice name
}

// Bins are the explicit histogram edges shared by every series of a chart.
type Bins struct {
	Start float64
	End   float64
	Size  float64
}

// Bin is one counted interval, or one category when Label is set.
type Bin struct {
	Start float64
	End   float64
	Label string
	Count int
}

type Series struct {
	Name    string
	Color   string
	Outline bool // translucent fill with a colored outline
	Points  []Point
	Bins    []Bin
}

type ChartSpec struct {
	ID      ChartID
	Title   string
	Kind    ChartKind
	Series  []Series
	BarMode BarMode
	Binning *Bins
	Legend  Legend
	XAxis   Axis
	YAxis   Axis
}
