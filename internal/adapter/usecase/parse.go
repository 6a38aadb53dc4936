package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"creative-factory/internal/core/domain"
)

// parsedCreative is one creative object read leniently from a model reply.
type parsedCreative struct {
	CoreConcept      string
	Title            string
	SceneDescription string
	Content          string
	CameraLighting   string
	ColorProps       string
	KeyNotes         string
	ChosenDimensions []string
	DimensionDetails map[string]domain.OptionDetail
	Keywords         []string
	VisualHints      []string
}

// parseCreatives decodes a reply into creative objects. Code fences are
// stripped and malformed JSON is repaired once. ok is false when the reply
// is not a list of objects, either top-level or under "creatives".
func parseCreatives(raw string) ([]parsedCreative, bool) {
	doc, ok := decodeLenient(raw)
	if !ok {
		return nil, false
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		list, isList := v["creatives"].([]any)
		if !isList {
			return nil, false
		}
		items = list
	default:
		return nil, false
	}

	out := make([]parsedCreative, 0, len(items))
	for _, item := range items {
		obj, isObj := item.(map[string]any)
		if !isObj {
			continue
		}
		out = append(out, parsedCreative{
			CoreConcept:      text(obj["core_concept"]),
			Title:            text(obj["title"]),
			SceneDescription: text(obj["scene_description"]),
			Content:          text(obj["content"]),
			CameraLighting:   text(obj["camera_lighting"]),
			ColorProps:       text(obj["color_props"]),
			KeyNotes:         text(obj["key_notes"]),
			ChosenDimensions: textList(obj["chosen_dimensions"]),
			DimensionDetails: details(obj["dimension_details"]),
			Keywords:         dedup(textList(obj["keywords"])),
			VisualHints:      dedup(textList(obj["visual_hints"])),
		})
	}
	return out, len(out) > 0
}

func decodeLenient(raw string) (any, bool) {
	s := stripFences(raw)
	if s == "" {
		return nil, false
	}
	var doc any
	if err := json.Unmarshal([]byte(s), &doc); err == nil {
		return doc, true
	}
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil, false
	}
	if err = json.Unmarshal([]byte(repaired), &doc); err != nil {
		return nil, false
	}
	return doc, true
}

// stripFences removes a surrounding ``` or ```json fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

// splitChunks cuts unstructured text into blank-line separated paragraphs.
func splitChunks(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var out []string
	for _, chunk := range strings.Split(raw, "\n\n") {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// text renders a scalar or a list of scalars as a string.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		return strings.Join(textList(t), "；")
	case map[string]any:
		if name := text(t["name"]); name != "" {
			return name
		}
		b, _ := json.Marshal(t)
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

// textList accepts a list of scalars or a single delimited string.
func textList(v any) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := text(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.FieldsFunc(t, func(r rune) bool {
			return r == ',' || r == '，' || r == '、' || r == ';' || r == '；'
		}) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func details(v any) map[string]domain.OptionDetail {
	out := map[string]domain.OptionDetail{}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for dim, raw := range obj {
		switch d := raw.(type) {
		case map[string]any:
			out[dim] = domain.OptionDetail{
				Name:        text(d["name"]),
				Description: text(d["description"]),
				Keywords:    textList(d["keywords"]),
				VisualHints: textList(d["visual_hints"]),
			}
		default:
			if name := text(d); name != "" {
				out[dim] = domain.OptionDetail{Name: name, Keywords: []string{}, VisualHints: []string{}}
			}
		}
	}
	return out
}

// dedup drops repeated entries keeping first occurrences.
func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
