package report

import (
	"io"
	"text/template"

	"github.com/exesaLigno/BuchiSolver/formula"
)

// greekLetters names nested Until definitions the way the original solver's
// to_latex_string abbreviated them, cycling if there are more definitions
// than letters (unlikely for any formula a human would type by hand).
var greekLetters = []string{
	"\\alpha", "\\beta", "\\gamma", "\\delta", "\\epsilon",
	"\\zeta", "\\eta", "\\theta", "\\iota", "\\kappa",
}

// Derivation is the input to LaTeX: the formula as parsed, as normalized,
// its subformula table, and its nested Until definitions, which LaTeX
// names with Greek letters.
type Derivation struct {
	Source      string
	Parsed      *formula.Formula
	Normalized  *formula.Formula
	All         []*formula.Formula
	Definitions []*formula.Formula
}

type latexRow struct {
	Index int
	Expr  string
}

var derivationTemplate = template.Must(template.New("derivation").Parse(`\documentclass{article}
\usepackage{amsmath}
\begin{document}

\section*{LTL to generalized B\"uchi automaton}

\subsection*{Input}
\[ {{.ParsedLatex}} \]

\subsection*{Normalized}
\[ {{.NormalizedLatex}} \]

{{if .DefinitionRows}}\subsection*{Definitions}
\begin{align*}
{{range .DefinitionRows}}{{.Expr}} \\
{{end}}\end{align*}
{{end}}
\subsection*{Subformulas}
\begin{align*}
{{range .AllRows}}\varphi_{ {{.Index}} } &= {{.Expr}} \\
{{end}}\end{align*}

\end{document}
`))

type derivationView struct {
	ParsedLatex     string
	NormalizedLatex string
	DefinitionRows  []latexRow
	AllRows         []latexRow
}

// LaTeX renders d through derivationTemplate into w.
func LaTeX(w io.Writer, d Derivation) error {
	labels := make(map[*formula.Formula]string)
	for i, def := range d.Definitions {
		labels[def] = greekLetters[i%len(greekLetters)]
	}

	view := derivationView{
		ParsedLatex:     toLatex(d.Parsed, labels, true),
		NormalizedLatex: toLatex(d.Normalized, labels, true),
	}
	for i, def := range d.Definitions {
		view.DefinitionRows = append(view.DefinitionRows, latexRow{
			Index: i,
			Expr:  labels[def] + " &= " + toLatex(def, labels, true),
		})
	}
	for i, f := range d.All {
		view.AllRows = append(view.AllRows, latexRow{Index: i, Expr: toLatex(f, labels, false)})
	}

	return derivationTemplate.Execute(w, view)
}

// toLatex renders f as a LaTeX math expression. When top is false and f has
// been assigned a Greek-letter definition, the letter is substituted in
// place of the full expansion (Definitions is a presentation abbreviation,
// spec.md section 3).
func toLatex(f *formula.Formula, labels map[*formula.Formula]string, top bool) string {
	if f == nil {
		return ""
	}
	if !top {
		if label, ok := labels[f]; ok {
			return label
		}
	}
	switch f.Kind() {
	case formula.KindTrue:
		return "\\mathrm{true}"
	case formula.KindFalse:
		return "\\mathrm{false}"
	case formula.KindAtom:
		return f.Name()
	case formula.KindNot:
		return "\\lnot " + paren(f.Left(), labels)
	case formula.KindNext:
		return "\\mathbf{X} " + paren(f.Left(), labels)
	case formula.KindFinally:
		return "\\mathbf{F} " + paren(f.Left(), labels)
	case formula.KindGlobally:
		return "\\mathbf{G} " + paren(f.Left(), labels)
	case formula.KindAnd:
		return paren(f.Left(), labels) + " \\land " + paren(f.Right(), labels)
	case formula.KindOr:
		return paren(f.Left(), labels) + " \\lor " + paren(f.Right(), labels)
	case formula.KindImpl:
		return paren(f.Left(), labels) + " \\rightarrow " + paren(f.Right(), labels)
	case formula.KindUntil:
		return paren(f.Left(), labels) + " \\mathbf{U} " + paren(f.Right(), labels)
	case formula.KindRelease:
		return paren(f.Left(), labels) + " \\mathbf{R} " + paren(f.Right(), labels)
	case formula.KindWeak:
		return paren(f.Left(), labels) + " \\mathbf{W} " + paren(f.Right(), labels)
	default:
		return f.String()
	}
}

func paren(f *formula.Formula, labels map[*formula.Formula]string) string {
	inner := toLatex(f, labels, false)
	if f.Kind() == formula.KindAtom || f.Kind() == formula.KindTrue || f.Kind() == formula.KindFalse {
		return inner
	}
	if _, ok := labels[f]; ok {
		return inner
	}
	return "(" + inner + ")"
}
