package gen

import (
	"fmt"
	"sort"
	"strings"
)

const indent = "  "

// Render serializes a library to Dart source text. Import directives are
// emitted in sorted order regardless of construction order; all other
// members follow their declared order. The output is syntactically valid
// but not canonically formatted; that is the formatter's job.
func Render(lib *Library) string {
	var sb strings.Builder

	writeHeader(&sb, lib.Header)

	if imports := sortedUnique(lib.PackageImports); len(imports) > 0 {
		sb.WriteString("\n")
		for _, imp := range imports {
			fmt.Fprintf(&sb, "import '%s';\n", imp)
		}
	}
	if imports := sortedUnique(lib.RelativeImports); len(imports) > 0 {
		sb.WriteString("\n")
		for _, imp := range imports {
			fmt.Fprintf(&sb, "import '%s';\n", imp)
		}
	}

	for _, class := range lib.Classes {
		sb.WriteString("\n")
		writeClass(&sb, class)
	}

	for _, field := range lib.Fields {
		sb.WriteString("\n")
		writeField(&sb, field, "")
	}

	for _, ext := range lib.Extensions {
		sb.WriteString("\n")
		writeExtension(&sb, ext)
	}

	return sb.String()
}

// writeHeader emits the header comment, prefixing lines that are not
// already comments.
func writeHeader(sb *strings.Builder, header string) {
	for _, line := range strings.Split(header, "\n") {
		if line == "" {
			sb.WriteString("//\n")
			continue
		}
		if !strings.HasPrefix(line, "//") {
			sb.WriteString("// ")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func writeClass(sb *strings.Builder, class Class) {
	sb.WriteString("class ")
	sb.WriteString(class.Name)
	if class.Extends != "" {
		sb.WriteString(" extends ")
		sb.WriteString(class.Extends)
	}
	sb.WriteString(" {\n")

	wroteMember := false
	if class.ConstCtor {
		fmt.Fprintf(sb, "%sconst %s();\n", indent, class.Name)
		wroteMember = true
	}

	for _, field := range class.Fields {
		if wroteMember {
			sb.WriteString("\n")
		}
		writeField(sb, field, indent)
		wroteMember = true
	}

	for _, method := range class.Methods {
		if wroteMember {
			sb.WriteString("\n")
		}
		writeMethod(sb, method)
		wroteMember = true
	}

	sb.WriteString("}\n")
}

func writeField(sb *strings.Builder, field Field, prefix string) {
	sb.WriteString(prefix)
	if field.Static {
		sb.WriteString("static ")
	}
	switch {
	case field.Const:
		sb.WriteString("const ")
	case field.Final:
		sb.WriteString("final ")
	}
	sb.WriteString(field.Type)
	sb.WriteString(" ")
	sb.WriteString(field.Name)
	if field.Value != "" {
		sb.WriteString(" = ")
		sb.WriteString(field.Value)
	}
	sb.WriteString(";\n")
}

func writeMethod(sb *strings.Builder, method Method) {
	if method.Override {
		sb.WriteString(indent)
		sb.WriteString("@override\n")
	}

	sb.WriteString(indent)
	if method.Static {
		sb.WriteString("static ")
	}
	sb.WriteString(method.Returns)
	sb.WriteString(" ")
	if method.Getter {
		sb.WriteString("get ")
	}
	sb.WriteString(method.Name)

	if !method.Getter {
		sb.WriteString("(")
		for i, p := range method.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Type)
			sb.WriteString(" ")
			sb.WriteString(p.Name)
		}
		sb.WriteString(")")
	}

	if method.Async {
		sb.WriteString(" async")
	}

	if method.Expression {
		sb.WriteString(" => ")
		sb.WriteString(method.Body)
		sb.WriteString(";\n")
		return
	}

	sb.WriteString(" {\n")
	for _, line := range strings.Split(method.Body, "\n") {
		sb.WriteString(indent)
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func writeExtension(sb *strings.Builder, ext Extension) {
	fmt.Fprintf(sb, "extension %s on %s {\n", ext.Name, ext.On)
	fmt.Fprintf(sb, "%s%s get %s => %s;\n", indent, ext.Returns, ext.Getter, ext.Value)
	sb.WriteString("}\n")
}

// sortedUnique returns the imports deduplicated and in stable sorted order.
func sortedUnique(imports []string) []string {
	seen := make(map[string]bool, len(imports))
	out := make([]string, 0, len(imports))
	for _, imp := range imports {
		if imp == "" || seen[imp] {
			continue
		}
		seen[imp] = true
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}
