package usecase

import "strings"

// formatTemplate substitutes {name} placeholders in tmpl with values.
// Doubled braces render as literal braces. The second result lists every
// placeholder that could not be substituted, including malformed ones; the
// rendered text must not be used when it is non-empty.
func formatTemplate(tmpl string, values map[string]string) (string, []string) {
	var (
		sb      strings.Builder
		missing []string
	)
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			sb.WriteByte('{')
			i++
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			sb.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				missing = append(missing, tmpl[i:])
				return sb.String(), missing
			}
			name := tmpl[i+1 : i+1+end]
			if v, ok := values[name]; ok && name != "" {
				sb.WriteString(v)
			} else {
				missing = append(missing, name)
			}
			i += end + 1
		case c == '}':
			missing = append(missing, "}")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), missing
}

// truncateTitle keeps the first titleRunes runes of content and marks the
// cut with an ellipsis.
func truncateTitle(content string) string {
	r := []rune(content)
	if len(r) <= titleRunes {
		return content
	}
	return string(r[:titleRunes]) + ellipsis
}
