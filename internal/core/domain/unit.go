package domain

// Function is a function build unit declared in the application template.
// Units are referenced by build definitions but owned by the template;
// they are re-resolved on every run.
type Function struct {
	Name     string
	Handler  string
	Runtime  string
	CodeURI  string
	Metadata map[string]string
}

// Layer is a layer build unit declared in the application template.
type Layer struct {
	Name               string
	CodeURI            string
	BuildMethod        string
	CompatibleRuntimes []string
}

// Template is the set of build units declared by one application template.
type Template struct {
	Functions []*Function
	Layers    []*Layer
}

// Function returns the declared function with the given name, or nil.
func (t *Template) Function(name string) *Function {
	for _, f := range t.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Layer returns the declared layer with the given name, or nil.
func (t *Template) Layer(name string) *Layer {
	for _, l := range t.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}
