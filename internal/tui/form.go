package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/bizdir/internal/model"
)

// formField identifies one row of the add form.
type formField int

const (
	fieldName formField = iota
	fieldCategory
	fieldLocation
	fieldDescription
	fieldPhone
	fieldWebsite
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Business Name",
	fieldCategory:    "Category",
	fieldLocation:    "Location",
	fieldDescription: "Description",
	fieldPhone:       "Phone Number (Optional)",
	fieldWebsite:     "Website URL (Optional)",
}

// addForm is the add-business modal. The category row is a selector, every
// other row is a text input.
type addForm struct {
	inputs   [fieldCount]textinput.Model // fieldCategory slot is unused
	category int                         // index into model.Categories()
	focus    formField
	err      string
}

func newAddForm() addForm {
	var f addForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Width = 48
		f.inputs[i] = ti
	}
	f.inputs[fieldWebsite].Placeholder = "https://example.com"
	f.focusField(fieldName)
	return f
}

// reset clears every field and the error, as cancelling the modal does.
func (f *addForm) reset() {
	*f = newAddForm()
}

func (f *addForm) focusField(field formField) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = field
	if field == fieldCategory {
		return nil
	}
	return f.inputs[field].Focus()
}

func (f *addForm) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *addForm) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

func (f *addForm) cycleCategory(delta int) {
	n := len(model.Categories())
	f.category = ((f.category+delta)%n + n) % n
}

func (f *addForm) selectedCategory() model.Category {
	return model.Categories()[f.category]
}

// input builds the add payload. Optional fields left blank become absent.
func (f *addForm) input() model.BusinessInput {
	return model.BusinessInput{
		Name:        f.inputs[fieldName].Value(),
		Category:    f.selectedCategory(),
		Location:    f.inputs[fieldLocation].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Phone:       model.OptionalString(f.inputs[fieldPhone].Value()),
		Website:     model.OptionalString(f.inputs[fieldWebsite].Value()),
	}
}

// update forwards msg to the focused text input.
func (f *addForm) update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldCategory {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
