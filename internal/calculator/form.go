package calculator

// Output identifies one of the six display regions of the calculator.
type Output string

const (
	OutputBaseCost    Output = "base-cost"
	OutputCIFCost     Output = "cif-cost"
	OutputDutyCost    Output = "duty-cost"
	OutputVATCost     Output = "vat-cost"
	OutputTotalCost   Output = "total-cost"
	OutputPerUnitCost Output = "per-unit-cost"
)

// Outputs lists the display regions in render order.
var Outputs = []Output{
	OutputBaseCost,
	OutputCIFCost,
	OutputDutyCost,
	OutputVATCost,
	OutputTotalCost,
	OutputPerUnitCost,
}

// Form holds the interactive state of the calculator: what the user typed,
// which fields are flagged invalid, what the result regions show and whether
// the breakdown and actions panels are visible.
//
// Editing a field clears only that field's flag. Fields are re-validated on
// the next Submit, never eagerly.
type Form struct {
	formatter Formatter

	values  map[Field]string
	invalid map[Field]bool
	outputs map[Output]string

	breakdownVisible bool
	actionsVisible   bool
}

// FormState is a read-only snapshot of a Form.
type FormState struct {
	Values           map[Field]string  `json:"values"`
	Invalid          map[Field]bool    `json:"invalid"`
	Outputs          map[Output]string `json:"outputs"`
	BreakdownVisible bool              `json:"breakdown_visible"`
	ActionsVisible   bool              `json:"actions_visible"`
}

// NewForm creates an empty form with hidden result panels. A nil formatter
// falls back to FallbackFormat.
func NewForm(formatter Formatter) *Form {
	return &Form{
		formatter: formatter,
		values:    make(map[Field]string, len(Fields)),
		invalid:   make(map[Field]bool, len(Fields)),
		outputs:   make(map[Output]string, len(Outputs)),
	}
}

// Set records the value typed into a field and clears its invalid flag.
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
	delete(f.invalid, field)
}

// Value returns the raw value of a field.
func (f *Form) Value(field Field) string {
	return f.values[field]
}

// Invalid reports whether the field is currently flagged.
func (f *Form) Invalid(field Field) bool {
	return f.invalid[field]
}

// Output returns the rendered text of a display region.
func (f *Form) Output(o Output) string {
	return f.outputs[o]
}

// BreakdownVisible reports whether the results breakdown is shown.
func (f *Form) BreakdownVisible() bool {
	return f.breakdownVisible
}

// ActionsVisible reports whether the results actions are shown.
func (f *Form) ActionsVisible() bool {
	return f.actionsVisible
}

// Submit validates every field, refreshes the invalid flags and, when all
// fields pass, renders the result and reveals both panels. On failure the
// previous outputs and panel visibility are left as they were.
func (f *Form) Submit() (Result, bool) {
	in := ParseInput(f.values)
	errs := Validate(in)
	for _, field := range Fields {
		if errs.Has(field) {
			f.invalid[field] = true
		} else {
			delete(f.invalid, field)
		}
	}
	if len(errs) > 0 {
		return Result{}, false
	}

	res := Compute(in)
	f.render(res)
	f.breakdownVisible = true
	f.actionsVisible = true
	return res, true
}

// Reset clears all values and flags and hides both panels.
func (f *Form) Reset() {
	for _, field := range Fields {
		f.values[field] = ""
	}
	clear(f.invalid)
	f.breakdownVisible = false
	f.actionsVisible = false
}

// State returns a snapshot of the form.
func (f *Form) State() FormState {
	st := FormState{
		Values:           make(map[Field]string, len(f.values)),
		Invalid:          make(map[Field]bool, len(f.invalid)),
		Outputs:          make(map[Output]string, len(f.outputs)),
		BreakdownVisible: f.breakdownVisible,
		ActionsVisible:   f.actionsVisible,
	}
	for k, v := range f.values {
		st.Values[k] = v
	}
	for k, v := range f.invalid {
		st.Invalid[k] = v
	}
	for k, v := range f.outputs {
		st.Outputs[k] = v
	}
	return st
}

func (f *Form) render(res Result) {
	format := FallbackFormat
	if f.formatter != nil {
		format = f.formatter.Format
	}
	f.outputs[OutputBaseCost] = format(res.BaseCost)
	f.outputs[OutputCIFCost] = format(res.CIFCost)
	f.outputs[OutputDutyCost] = format(res.DutyCost)
	f.outputs[OutputVATCost] = format(res.VATCost)
	f.outputs[OutputTotalCost] = format(res.TotalCost)
	f.outputs[OutputPerUnitCost] = format(res.PerUnitCost)
}

// RenderResult formats every display region of a result.
func RenderResult(res Result, formatter Formatter) map[Output]string {
	f := NewForm(formatter)
	f.render(res)
	return f.outputs
}
