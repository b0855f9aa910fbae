// Package plotly models the subset of the Plotly.js figure schema the report
// charts use and writes figures as standalone HTML pages.
package plotly

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type         string        `json:"type"`
	Mode         string        `json:"mode,omitempty"`
	Name         string        `json:"name,omitempty"`
	X            []any         `json:"x,omitempty"`
	Y            []any         `json:"y,omitempty"`
	Line         *Line         `json:"line,omitempty"`
	Marker       *Marker       `json:"marker,omitempty"`
	Text         []string      `json:"text,omitempty"`
	TextPosition string        `json:"textposition,omitempty"`
	Header       *TableSection `json:"header,omitempty"`
	Cells        *TableSection `json:"cells,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type Marker struct {
	Color string `json:"color,omitempty"`
	Line  *Line  `json:"line,omitempty"`
}

// TableSection is the header or cells block of a table trace. Values holds
// one slice per column.
type TableSection struct {
	Values any    `json:"values"`
	Fill   *Fill  `json:"fill,omitempty"`
	Line   *Line  `json:"line,omitempty"`
	Font   *Font  `json:"font,omitempty"`
	Align  string `json:"align,omitempty"`
}

type Fill struct {
	Color string `json:"color"`
}

type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	Font         *Font        `json:"font,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	Legend       *Legend      `json:"legend,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Font struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

type Axis struct {
	Title         *Title   `json:"title,omitempty"`
	Type          string   `json:"type,omitempty"`
	ShowLine      bool     `json:"showline,omitempty"`
	LineWidth     float64  `json:"linewidth,omitempty"`
	LineColor     string   `json:"linecolor,omitempty"`
	Mirror        bool     `json:"mirror,omitempty"`
	GridColor     string   `json:"gridcolor,omitempty"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	CategoryArray []string `json:"categoryarray,omitempty"`
}

type Legend struct {
	Title *Title `json:"title,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Annotation struct {
	X         any      `json:"x"`
	Y         any      `json:"y"`
	Text      string   `json:"text"`
	ShowArrow bool     `json:"showarrow"`
	ArrowHead int      `json:"arrowhead,omitempty"`
	AX        *float64 `json:"ax,omitempty"`
	AY        float64  `json:"ay,omitempty"`
	Font      *Font    `json:"font,omitempty"`
	BGColor   string   `json:"bgcolor,omitempty"`
}

// Float returns a pointer to v, for optional numeric fields where zero is
// meaningful.
func Float(v float64) *float64 {
	return &v
}
