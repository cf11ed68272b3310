// Package gen builds and renders the localization wrapper library.
//
// The pipeline is a pure function from a generation request to output text:
// derive class names, assemble an in-memory document model of the wrapper
// library, render it deterministically, then hand the text to the formatter.
// Nothing in this package touches the filesystem except the asset writer.
package gen

// Library is the document model of one generated wrapper file.
type Library struct {
	// Header is the comment identifying the artifact as generated.
	Header string

	// PackageImports and RelativeImports are deduplicated and sorted at
	// render time, so construction order never leaks into the output.
	PackageImports  []string
	RelativeImports []string

	Classes    []Class
	Fields     []Field
	Extensions []Extension
}

// Class is one class declaration. Members are rendered in declared order.
type Class struct {
	Name    string
	Extends string

	// ConstCtor emits a generative const constructor, required for classes
	// instantiated in const contexts.
	ConstCtor bool

	Fields  []Field
	Methods []Method
}

// Field is a field declaration, top-level or inside a class.
type Field struct {
	Name   string
	Type   string
	Static bool
	Const  bool
	Final  bool
	Value  string
}

// Param is a positional method parameter.
type Param struct {
	Name string
	Type string
}

// Method is a method or getter declaration.
type Method struct {
	Name     string
	Static   bool
	Override bool
	Async    bool
	Getter   bool

	// Expression selects shorthand ("=> body;") form; otherwise Body is
	// rendered as a block, one statement per line.
	Expression bool

	Params  []Param
	Returns string
	Body    string
}

// Extension is an extension declaration exposing a single getter.
type Extension struct {
	Name    string
	On      string
	Getter  string
	Returns string
	Value   string
}
