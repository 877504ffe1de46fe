package config

// Default returns the starter theme written by `cascade init`.
func Default(name string) *Theme {
	if name == "" {
		name = "starter"
	}
	return &Theme{
		Version:     "1.0",
		Name:        name,
		Description: "Starter theme generated by cascade init",
		Prefix:      "ui",
		Breakpoints: []Breakpoint{
			{Name: "small", MinWidth: 0},
			{Name: "medium", MinWidth: 480},
			{Name: "large", MinWidth: 840},
			{Name: "xlarge", MinWidth: 1280},
		},
		Components: map[string]Component{
			"button": {
				Base: Declaration{"display": "inline-flex", "padding": "8px 16px"},
				Variants: map[string]Declaration{
					"grow":   {"flex-grow": "1"},
					"shrink": {"flex-shrink": "1"},
				},
				Responsive: map[string]Declaration{
					"large": {"padding": "12px 24px"},
				},
			},
			"card": {
				Base: Declaration{"border-radius": "8px", "padding": "16px"},
				Variants: map[string]Declaration{
					"flat":   {"box-shadow": "none"},
					"raised": {"box-shadow": "0 2px 8px rgba(0,0,0,0.15)"},
				},
				Responsive: map[string]Declaration{
					"medium": {"padding": "24px"},
				},
			},
			"flex": {
				Base: Declaration{"display": "flex"},
				Variants: map[string]Declaration{
					"column": {"flex-direction": "column"},
					"row":    {"flex-direction": "row"},
				},
			},
		},
	}
}
