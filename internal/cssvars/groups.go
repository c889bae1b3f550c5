package cssvars

import (
	"strings"

	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Group names, in projection order.
const (
	GroupTM         = "tm"
	GroupSemantic   = "semantic"
	GroupChart      = "chart"
	GroupPrimary    = "primary"
	GroupAccent     = "accent"
	GroupSecondary  = "secondary"
	GroupMotion     = "motion"
	GroupRadius     = "radius"
	GroupShadow     = "shadow"
	GroupSpacing    = "spacing"
	GroupTypography = "typography"
)

// Builder produces one group's variables.
type Builder func(mode tokens.Mode, m tokens.Merged) Values

// Group pairs a name with its builder so projection can isolate failures.
type Group struct {
	Name  string
	Build Builder
}

// Groups returns the colour-and-scale groups in projection order. The tm
// group is always first so the required-token check sees it before anything else.
func Groups() []Group {
	return []Group{
		{Name: GroupTM, Build: BuildTmRuntimeValues},
		{Name: GroupSemantic, Build: BuildSemanticValues},
		{Name: GroupChart, Build: BuildChartValues},
		{Name: GroupPrimary, Build: scaleBuilder("primary", func(m tokens.Merged) tokens.ColorScale { return m.Primary })},
		{Name: GroupAccent, Build: scaleBuilder("accent", func(m tokens.Merged) tokens.ColorScale { return m.Accent })},
		{Name: GroupSecondary, Build: scaleBuilder("secondary", func(m tokens.Merged) tokens.ColorScale { return m.Secondary })},
		{Name: GroupMotion, Build: func(_ tokens.Mode, m tokens.Merged) Values { return tokenValues("--motion-", m.Motion) }},
		{Name: GroupRadius, Build: func(_ tokens.Mode, m tokens.Merged) Values { return tokenValues("--radius-", m.Radius) }},
		{Name: GroupShadow, Build: func(_ tokens.Mode, m tokens.Merged) Values { return tokenValues("--shadow-", m.Shadow) }},
		{Name: GroupSpacing, Build: func(_ tokens.Mode, m tokens.Merged) Values { return tokenValues("--spacing-", m.Spacing) }},
		{Name: GroupTypography, Build: func(_ tokens.Mode, m tokens.Merged) Values { return tokenValues("--", m.Typography) }},
	}
}

// BuildSemanticValues emits --success, --success-foreground and friends.
func BuildSemanticValues(mode tokens.Mode, m tokens.Merged) Values {
	out := Values{}
	for name, value := range tokens.Fields(m.Semantic.Get(mode)) {
		out["--"+strings.ReplaceAll(name, "_", "-")] = value
	}
	return out
}

// BuildChartValues emits --chart-1 through --chart-5.
func BuildChartValues(mode tokens.Mode, m tokens.Merged) Values {
	chart := m.Chart.Get(mode)
	return Values{
		"--chart-1": chart.One,
		"--chart-2": chart.Two,
		"--chart-3": chart.Three,
		"--chart-4": chart.Four,
		"--chart-5": chart.Five,
	}
}

// BuildScaleValues emits --{prefix}-{stop} for every stop of scale.
func BuildScaleValues(prefix string, scale tokens.ColorScale) Values {
	out := make(Values, len(tokens.Stops))
	for _, stop := range tokens.Stops {
		out["--"+prefix+"-"+stop.String()] = scale.At(stop)
	}
	return out
}

func scaleBuilder(prefix string, pick func(tokens.Merged) tokens.ColorScale) Builder {
	return func(_ tokens.Mode, m tokens.Merged) Values {
		return BuildScaleValues(prefix, pick(m))
	}
}

func tokenValues(prefix string, list []tokens.Token) Values {
	out := make(Values, len(list))
	for _, tok := range list {
		out[prefix+tok.Name] = tok.Value
	}
	return out
}
