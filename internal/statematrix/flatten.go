package statematrix

var propertySuffixes = map[string]string{
	PropBackground: "bg",
	PropText:       "text",
}

// Suffix maps a property name onto its variable suffix.
func Suffix(property string) string {
	if s, ok := propertySuffixes[property]; ok {
		return s
	}
	return property
}

// Flatten converts m into --{component}-{variant}-{state}-{suffix} variables.
// The traversal is purely structural.
func Flatten(m Matrix) map[string]string {
	out := make(map[string]string)
	for component, variants := range m {
		for variant, states := range variants {
			for state, properties := range states {
				for property, value := range properties {
					out["--"+component+"-"+variant+"-"+state+"-"+Suffix(property)] = value
				}
			}
		}
	}
	return out
}
