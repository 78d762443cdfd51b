package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/calculator"
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/logger"
	"github.com/guttosm/export-go/internal/middleware"
	"github.com/guttosm/export-go/internal/service"
)

//go:embed templates/calculator.html
var templatesFS embed.FS

var calculatorTemplate = template.Must(template.ParseFS(templatesFS, "templates/calculator.html"))

// lastValidPrefix names the hidden inputs carrying the last accepted values,
// so a rejected submit keeps showing the previous result.
const lastValidPrefix = "last-"

type fieldView struct {
	ID      string
	Label   string
	Value   string
	Invalid bool
}

type outputView struct {
	ID    string
	Label string
	Value string
}

type hiddenInput struct {
	Name  string
	Value string
}

type calculatorPageData struct {
	Lang             string
	Title            string
	Placeholder      string
	InvalidMessage   string
	CalculateLabel   string
	ResetLabel       string
	Fields           []fieldView
	Outputs          []outputView
	LastValid        []hiddenInput
	BreakdownVisible bool
	ActionsVisible   bool
}

// CalculatorPage renders the server side calculator form.
type CalculatorPage struct {
	calculator service.Calculator
	translator *i18n.Translator
}

// NewCalculatorPage creates the calculator page handler.
func NewCalculatorPage(calc service.Calculator) *CalculatorPage {
	return &CalculatorPage{
		calculator: calc,
		translator: i18n.GetTranslator(),
	}
}

// Show handles GET /calculator with an empty form and hidden results.
func (p *CalculatorPage) Show(c *gin.Context) {
	p.render(c, p.calculator.NewForm(), nil)
}

// Submit handles POST /calculator. The calculate action validates every
// field and, when all pass, shows the breakdown; a rejected submit flags the
// failing fields and keeps the previous result. The reset action clears the
// form and hides the results.
func (p *CalculatorPage) Submit(c *gin.Context) {
	var req dto.CalculatorFormRequest
	if err := c.ShouldBind(&req); err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	form := p.calculator.NewForm()
	if req.ResolvedAction() == dto.FormActionReset {
		form.Reset()
		p.render(c, form, nil)
		return
	}

	last := p.restoreLastValid(c, form)

	for field, value := range req.Raw() {
		form.Set(field, value)
	}
	if _, ok := p.calculator.SubmitForm(form); ok {
		last = form.State().Values
	}
	p.render(c, form, last)
}

// restoreLastValid replays the previously accepted values so the form shows
// their result. It returns those values, or nil when there were none.
func (p *CalculatorPage) restoreLastValid(c *gin.Context, form *calculator.Form) map[calculator.Field]string {
	last := make(map[calculator.Field]string, len(calculator.Fields))
	found := false
	for _, f := range calculator.Fields {
		if v, ok := c.GetPostForm(lastValidPrefix + f.ElementID()); ok {
			last[f] = v
			found = true
		}
	}
	if !found {
		return nil
	}

	for f, v := range last {
		form.Set(f, v)
	}
	// a tampered hidden value simply leaves the results hidden
	if _, ok := form.Submit(); !ok {
		return nil
	}
	return last
}

func (p *CalculatorPage) render(c *gin.Context, form *calculator.Form, lastValid map[calculator.Field]string) {
	locale := i18n.GetLocale(c)
	t := func(key string) string { return p.translator.Translate(key, locale) }

	data := calculatorPageData{
		Lang:             locale,
		Title:            t("calculator.title"),
		Placeholder:      t("calculator.placeholder"),
		InvalidMessage:   t("calculator.invalid_field"),
		CalculateLabel:   t("calculator.calculate"),
		ResetLabel:       t("calculator.reset"),
		BreakdownVisible: form.BreakdownVisible(),
		ActionsVisible:   form.ActionsVisible(),
	}
	for _, f := range calculator.Fields {
		data.Fields = append(data.Fields, fieldView{
			ID:      f.ElementID(),
			Label:   t("calculator." + string(f)),
			Value:   form.Value(f),
			Invalid: form.Invalid(f),
		})
		if lastValid != nil {
			data.LastValid = append(data.LastValid, hiddenInput{
				Name:  lastValidPrefix + f.ElementID(),
				Value: lastValid[f],
			})
		}
	}
	for _, o := range calculator.Outputs {
		data.Outputs = append(data.Outputs, outputView{
			ID:    string(o),
			Label: t("calculator." + strings.ReplaceAll(string(o), "-", "_")),
			Value: form.Output(o),
		})
	}

	var buf bytes.Buffer
	if err := calculatorTemplate.Execute(&buf, data); err != nil {
		log := logger.WithRequest(middleware.GetRequestID(c))
		log.Error().Err(err).Msg("Failed to render calculator page")
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
