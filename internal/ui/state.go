package ui

// Kind is the visible screen.
type Kind int

const (
	Idle Kind = iota
	Loading
	Hello
	ShapeDisplayed
	Confused
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Hello:
		return "hello"
	case ShapeDisplayed:
		return "shape"
	case Confused:
		return "confused"
	default:
		return "unknown"
	}
}

// State is the whole UI. Shape is set only for ShapeDisplayed and Message
// only for Confused.
type State struct {
	Kind    Kind
	Shape   string
	Message string
}

// Region is a named area of the screen.
type Region string

const (
	RegionStart    Region = "start-app"
	RegionSpinner  Region = "spinner"
	RegionHello    Region = "hello"
	RegionShape    Region = "shape"
	RegionConfused Region = "confused"
	RegionSuccess  Region = "success"
)

// Regions lists every region in render order.
var Regions = []Region{RegionStart, RegionSpinner, RegionHello, RegionShape, RegionConfused, RegionSuccess}

// Visible derives the visibility of r from s.
func (s State) Visible(r Region) bool {
	switch r {
	case RegionStart:
		return s.Kind == Idle
	case RegionSpinner:
		return s.Kind == Loading
	case RegionHello:
		return s.Kind == Hello
	case RegionShape:
		return s.Kind == ShapeDisplayed
	case RegionConfused:
		return s.Kind == Confused
	case RegionSuccess:
		return s.Kind == Hello || s.Kind == ShapeDisplayed
	default:
		return false
	}
}

// ShapeClass is the style class of the shape region, e.g. "shape-square".
func (s State) ShapeClass() string {
	if s.Kind != ShapeDisplayed || s.Shape == "" {
		return ""
	}
	return "shape-" + s.Shape
}

// LoadingState resets every transient region and shows the spinner.
func LoadingState() State { return State{Kind: Loading} }

// HelloState shows the greeting.
func HelloState() State { return State{Kind: Hello} }

// ShapeState shows shape.
func ShapeState(shape string) State { return State{Kind: ShapeDisplayed, Shape: shape} }

// ConfusedState shows the error region carrying err's text.
func ConfusedState(err error) State {
	s := State{Kind: Confused}
	if err != nil {
		s.Message = err.Error()
	}
	return s
}
