package tokens

// Registry is the canonical base token set. Values are never mutated after
// construction; DefaultRegistry returns a fresh copy on every call.
type Registry struct {
	Primary   ColorScale
	Accent    ColorScale
	Secondary ColorScale

	Base     ModeTokens[BaseColors]
	Surface  ModeTokens[SurfaceColors]
	Semantic ModeTokens[SemanticColors]
	Text     ModeTokens[TextColors]
	Disabled ModeTokens[DisabledColors]
	Chart    ModeTokens[ChartColors]

	Spacing    []Token
	Radius     []Token
	Shadow     []Token
	Typography []Token
	Motion     []Token
}

// DefaultRegistry returns the built-in token definitions.
func DefaultRegistry() *Registry {
	return &Registry{
		Primary: NewColorScale(
			"214 100% 97%",
			"214 95% 93%",
			"213 97% 87%",
			"212 96% 78%",
			"213 94% 68%",
			"217 91% 60%",
			"221 83% 53%",
			"224 76% 48%",
			"226 71% 40%",
			"224 64% 33%",
			"226 57% 21%",
		),
		Accent: NewColorScale(
			"250 100% 98%",
			"251 91% 95%",
			"251 95% 92%",
			"252 95% 85%",
			"255 92% 76%",
			"258 90% 66%",
			"262 83% 58%",
			"263 70% 50%",
			"263 69% 42%",
			"264 67% 35%",
			"261 73% 23%",
		),
		Secondary: NewColorScale(
			"210 40% 98%",
			"210 40% 96.1%",
			"214.3 31.8% 91.4%",
			"212.7 26.8% 83.9%",
			"215 20.2% 65.1%",
			"215.4 16.3% 46.9%",
			"215.3 19.3% 34.5%",
			"215.3 25% 26.7%",
			"217.2 32.6% 17.5%",
			"222.2 47.4% 11.2%",
			"222.2 84% 4.9%",
		),
		Base: ModeTokens[BaseColors]{
			Day: BaseColors{
				Background:          "0 0% 100%",
				Foreground:          "222.2 84% 4.9%",
				Primary:             "221 83% 53%",
				PrimaryForeground:   "210 40% 98%",
				Secondary:           "210 40% 96.1%",
				SecondaryForeground: "222.2 47.4% 11.2%",
				Accent:              "262 83% 58%",
				AccentForeground:    "250 100% 98%",
				Muted:               "210 40% 96.1%",
				MutedForeground:     "215.4 16.3% 46.9%",
				Border:              "214.3 31.8% 91.4%",
				Input:               "214.3 31.8% 91.4%",
				Ring:                "221 83% 53%",
			},
			Night: BaseColors{
				Background:          "222.2 84% 4.9%",
				Foreground:          "210 40% 98%",
				Primary:             "217 91% 60%",
				PrimaryForeground:   "222.2 47.4% 11.2%",
				Secondary:           "217.2 32.6% 17.5%",
				SecondaryForeground: "210 40% 98%",
				Accent:              "258 90% 66%",
				AccentForeground:    "261 73% 23%",
				Muted:               "217.2 32.6% 17.5%",
				MutedForeground:     "215 20.2% 65.1%",
				Border:              "217.2 32.6% 17.5%",
				Input:               "217.2 32.6% 17.5%",
				Ring:                "213 94% 68%",
			},
		},
		Surface: ModeTokens[SurfaceColors]{
			Day: SurfaceColors{
				Card:              "0 0% 100%",
				CardForeground:    "222.2 84% 4.9%",
				Popover:           "0 0% 100%",
				PopoverForeground: "222.2 84% 4.9%",
				Overlay:           "222.2 84% 4.9%",
				Elevated:          "210 40% 98%",
			},
			Night: SurfaceColors{
				Card:              "222.2 84% 6.5%",
				CardForeground:    "210 40% 98%",
				Popover:           "222.2 84% 6.5%",
				PopoverForeground: "210 40% 98%",
				Overlay:           "0 0% 0%",
				Elevated:          "217.2 32.6% 12%",
			},
		},
		Semantic: ModeTokens[SemanticColors]{
			Day: SemanticColors{
				Success:           "142 71% 45%",
				SuccessForeground: "138 76% 97%",
				Warning:           "38 92% 50%",
				WarningForeground: "26 83% 14%",
				Error:             "0 84% 60%",
				ErrorForeground:   "0 86% 97%",
				Info:              "199 89% 48%",
				InfoForeground:    "204 100% 97%",
			},
			Night: SemanticColors{
				Success:           "142 69% 58%",
				SuccessForeground: "144 61% 20%",
				Warning:           "43 96% 56%",
				WarningForeground: "26 83% 14%",
				Error:             "0 91% 71%",
				ErrorForeground:   "0 75% 15%",
				Info:              "198 93% 60%",
				InfoForeground:    "204 80% 16%",
			},
		},
		Text: ModeTokens[TextColors]{
			Day: TextColors{
				Primary:   "222.2 84% 4.9%",
				Secondary: "215.3 25% 26.7%",
				Muted:     "215.4 16.3% 46.9%",
				Inverse:   "210 40% 98%",
				Link:      "221 83% 53%",
			},
			Night: TextColors{
				Primary:   "210 40% 98%",
				Secondary: "212.7 26.8% 83.9%",
				Muted:     "215 20.2% 65.1%",
				Inverse:   "222.2 84% 4.9%",
				Link:      "213 94% 68%",
			},
		},
		Disabled: ModeTokens[DisabledColors]{
			Day: DisabledColors{
				Background: "210 40% 96.1%",
				Foreground: "215 20.2% 65.1%",
				Border:     "214.3 31.8% 91.4%",
			},
			Night: DisabledColors{
				Background: "217.2 32.6% 17.5%",
				Foreground: "215.3 19.3% 34.5%",
				Border:     "215.3 25% 26.7%",
			},
		},
		Chart: ModeTokens[ChartColors]{
			Day: ChartColors{
				One:   "12 76% 61%",
				Two:   "173 58% 39%",
				Three: "197 37% 24%",
				Four:  "43 74% 66%",
				Five:  "27 87% 67%",
			},
			Night: ChartColors{
				One:   "220 70% 50%",
				Two:   "160 60% 45%",
				Three: "30 80% 55%",
				Four:  "280 65% 60%",
				Five:  "340 75% 55%",
			},
		},
		Spacing: []Token{
			{Name: "0", Value: "0px"},
			{Name: "px", Value: "1px"},
			{Name: "0-5", Value: "0.125rem"},
			{Name: "1", Value: "0.25rem"},
			{Name: "2", Value: "0.5rem"},
			{Name: "3", Value: "0.75rem"},
			{Name: "4", Value: "1rem"},
			{Name: "6", Value: "1.5rem"},
			{Name: "8", Value: "2rem"},
			{Name: "12", Value: "3rem"},
			{Name: "16", Value: "4rem"},
		},
		Radius: []Token{
			{Name: "none", Value: "0px"},
			{Name: "sm", Value: "0.125rem"},
			{Name: "md", Value: "0.375rem"},
			{Name: "lg", Value: "0.5rem"},
			{Name: "xl", Value: "0.75rem"},
			{Name: "full", Value: "9999px"},
		},
		Shadow: []Token{
			{Name: "sm", Value: "0 1px 2px 0 hsl(var(--tm-shadow-color) / 0.05)"},
			{Name: "md", Value: "0 4px 6px -1px hsl(var(--tm-shadow-color) / 0.1), 0 2px 4px -2px hsl(var(--tm-shadow-color) / 0.1)"},
			{Name: "lg", Value: "0 10px 15px -3px hsl(var(--tm-shadow-color) / 0.1), 0 4px 6px -4px hsl(var(--tm-shadow-color) / 0.1)"},
			{Name: "xl", Value: "0 20px 25px -5px hsl(var(--tm-shadow-color) / 0.1), 0 8px 10px -6px hsl(var(--tm-shadow-color) / 0.1)"},
		},
		Typography: []Token{
			{Name: "font-sans", Value: "Inter, ui-sans-serif, system-ui, sans-serif"},
			{Name: "font-mono", Value: "\"JetBrains Mono\", ui-monospace, monospace"},
			{Name: "text-xs", Value: "0.75rem"},
			{Name: "text-sm", Value: "0.875rem"},
			{Name: "text-base", Value: "1rem"},
			{Name: "text-lg", Value: "1.125rem"},
			{Name: "text-xl", Value: "1.25rem"},
			{Name: "text-2xl", Value: "1.5rem"},
			{Name: "leading-tight", Value: "1.25"},
			{Name: "leading-normal", Value: "1.5"},
			{Name: "leading-relaxed", Value: "1.625"},
		},
		Motion: []Token{
			{Name: "duration-fast", Value: "150ms"},
			{Name: "duration-base", Value: "200ms"},
			{Name: "duration-slow", Value: "300ms"},
			{Name: "easing-standard", Value: "cubic-bezier(0.2, 0, 0, 1)"},
			{Name: "easing-emphasized", Value: "cubic-bezier(0.3, 0, 0, 1)"},
			{Name: "easing-decelerate", Value: "cubic-bezier(0, 0, 0, 1)"},
		},
	}
}
