package sourcekit

import (
	"strings"

	"go.lsp.dev/protocol"

	"github.com/swift-tooling/swiftext/internal/host"
)

// LabelForCompletion synthesizes a display label for a completion item. The
// snippet shows a syntactically plausible Swift declaration while the filter
// range covers only the identifier a fuzzy matcher should score. A nil result
// means this completion kind has no label strategy and the host should apply
// its default rendering.
func (s *SourceKitLSP) LabelForCompletion(item protocol.CompletionItem) *host.CodeLabel {
	switch item.Kind {
	case protocol.CompletionItemKindClass,
		protocol.CompletionItemKindStruct,
		protocol.CompletionItemKindEnum,
		protocol.CompletionItemKindInterface,
		protocol.CompletionItemKindModule:
		return undecoratedLabel(item.Label, "type")

	case protocol.CompletionItemKindKeyword:
		return undecoratedLabel(item.Label, "keyword")

	case protocol.CompletionItemKindEnumMember:
		return enumCaseLabel(item.Label)

	case protocol.CompletionItemKindFunction,
		protocol.CompletionItemKindMethod:
		return functionLabel(item.Label, item.Detail)

	case protocol.CompletionItemKindTypeParameter:
		return typealiasLabel(item.Label, item.Detail)

	case protocol.CompletionItemKindVariable,
		protocol.CompletionItemKindField,
		protocol.CompletionItemKindProperty:
		return declarationLabel("var ", item.Label, item.Detail)

	case protocol.CompletionItemKindConstant:
		return declarationLabel("let ", item.Label, item.Detail)

	case protocol.CompletionItemKindValue:
		return assignmentLabel(item.Label, item.Detail)

	default:
		return nil
	}
}

// LabelForSymbol synthesizes a display label for a workspace or document
// symbol. Symbol kinds outside the fixed Swift declaration set yield nil.
func (s *SourceKitLSP) LabelForSymbol(symbol protocol.SymbolInformation) *host.CodeLabel {
	var keyword string
	switch symbol.Kind {
	case protocol.SymbolKindFunction, protocol.SymbolKindMethod:
		keyword = "func"
	case protocol.SymbolKindClass:
		keyword = "class"
	case protocol.SymbolKindStruct:
		keyword = "struct"
	case protocol.SymbolKindEnum:
		keyword = "enum"
	case protocol.SymbolKindVariable:
		keyword = "var"
	case protocol.SymbolKindConstant:
		keyword = "let"
	default:
		return nil
	}

	code := keyword + " " + symbol.Name
	return &host.CodeLabel{
		Code:        code,
		Spans:       []host.Span{{Range: host.Range{Start: 0, End: len(code)}}},
		FilterRange: host.Range{Start: len(keyword) + 1, End: len(code)},
	}
}

// undecoratedLabel renders the raw label text with a single highlight over the
// whole label.
func undecoratedLabel(label, highlight string) *host.CodeLabel {
	whole := host.Range{Start: 0, End: len(label)}
	return &host.CodeLabel{
		Code:        label,
		Spans:       []host.Span{{Range: whole, Highlight: highlight}},
		FilterRange: whole,
	}
}

// enumCaseLabel wraps the case in a synthetic enclosing enum so the host
// highlights it as a case declaration. The filter stops at the first paren so
// associated-value signatures never pollute fuzzy matching.
func enumCaseLabel(label string) *host.CodeLabel {
	const prefix = "enum Enum { case "
	code := prefix + label + " }"

	name := host.Range{Start: len(prefix), End: len(prefix) + len(label)}
	filter := name
	if i := strings.Index(label, "("); i >= 0 {
		filter.End = filter.Start + i
	}

	return &host.CodeLabel{
		Code:        code,
		Spans:       []host.Span{{Range: name}},
		FilterRange: filter,
	}
}

// functionLabel synthesizes a func declaration preview. The return arrow is
// omitted when the completion carries no type detail. Labels without a
// parameter list get an empty one so the snippet still parses.
func functionLabel(label, detail string) *host.CodeLabel {
	if label == "" {
		return nil
	}

	const prefix = "func "
	const suffix = " {}"

	code := prefix + label
	filterLen := len(label)
	if i := strings.Index(label, "("); i >= 0 {
		filterLen = i
	} else {
		code += "()"
	}
	if detail != "" {
		code += " -> " + detail
	}
	code += suffix

	return &host.CodeLabel{
		Code: code,
		Spans: []host.Span{{
			Range: host.Range{Start: len(prefix), End: len(code) - len(suffix)},
		}},
		FilterRange: host.Range{Start: len(prefix), End: len(prefix) + filterLen},
	}
}

// typealiasLabel renders a generic or type parameter as a typealias bound to
// its resolved type. No detail means there is nothing to alias.
func typealiasLabel(label, detail string) *host.CodeLabel {
	if detail == "" {
		return nil
	}

	const prefix = "typealias "
	code := prefix + label + " = " + detail

	return &host.CodeLabel{
		Code: code,
		Spans: []host.Span{{
			Range: host.Range{Start: len(prefix), End: len(code)},
		}},
		FilterRange: host.Range{Start: len(prefix), End: len(prefix) + len(label)},
	}
}

// declarationLabel renders a named variable or constant declaration. The kind
// requires a type detail; without one there is no declaration to show.
func declarationLabel(keyword, label, detail string) *host.CodeLabel {
	if detail == "" {
		return nil
	}

	code := keyword + label + ": " + detail

	return &host.CodeLabel{
		Code: code,
		Spans: []host.Span{{
			Range: host.Range{Start: len(keyword), End: len(code)},
		}},
		FilterRange: host.Range{Start: len(keyword), End: len(keyword) + len(label)},
	}
}

// assignmentLabel renders an anonymous value in assignment style, with the
// type annotation included only when a detail is supplied.
func assignmentLabel(label, detail string) *host.CodeLabel {
	const keyword = "var "

	code := keyword + "value"
	if detail != "" {
		code += ": " + detail
	}
	code += " = " + label

	return &host.CodeLabel{
		Code: code,
		Spans: []host.Span{{
			Range: host.Range{Start: len(keyword), End: len(code)},
		}},
		FilterRange: host.Range{Start: len(code) - len(label), End: len(code)},
	}
}
