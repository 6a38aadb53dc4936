package usecase

import (
	"fmt"
	"strings"

	"creative-factory/internal/core/domain"
)

var (
	achievements  = []string{"传奇成就", "巅峰体验", "荣耀时刻"}
	callsToAction = []string{"立即体验", "马上下载", "加入战斗"}
	worlds        = []string{"游戏世界", "奇幻大陆", "冒险之地"}
	powers        = []string{"力量", "技能", "能力"}
	experiences   = []string{"体验", "冒险", "旅程"}
	excitements   = []string{"精彩", "刺激", "震撼"}
)

// assemble builds count drafts locally from option templates, without the
// model. Each draft mixes two to four of the resolved dimensions.
func (g *GeneratorUseCase) assemble(
	resolved []resolvedDimension,
	count int,
	idea string,
	custom map[string]string,
	params domain.GenerationParams,
) []domain.Draft {
	g.mu.Lock()
	defer g.mu.Unlock()

	drafts := make([]domain.Draft, 0, count)
	for i := 0; i < count; i++ {
		drafts = append(drafts, g.assembleOne(resolved, idea, custom))
	}
	return drafts
}

func (g *GeneratorUseCase) assembleOne(resolved []resolvedDimension, idea string, custom map[string]string) domain.Draft {
	k := min(len(resolved), 2+g.rnd.IntN(3))
	perm := g.rnd.Perm(len(resolved))

	var (
		chosen     []string
		picked     []domain.Option
		dimDetails = map[string]domain.OptionDetail{}
		keywords   []string
		visuals    []string
	)
	for _, idx := range perm[:k] {
		d := resolved[idx]
		o := d.options[g.rnd.IntN(len(d.options))]
		chosen = append(chosen, d.name)
		picked = append(picked, o)
		dimDetails[d.name] = o.Detail()
		keywords = append(keywords, o.Keywords...)
		visuals = append(visuals, o.VisualHints...)
	}

	content := g.compose(picked, idea, custom)
	return domain.Draft{
		Title:            truncateTitle(content),
		Content:          content,
		ChosenDimensions: nonNilStrings(chosen),
		DimensionDetails: dimDetails,
		Keywords:         dedup(keywords),
		VisualHints:      dedup(visuals),
		Origin:           domain.OriginTemplate,
	}
}

// compose picks the draft text. User input wins over option templates.
func (g *GeneratorUseCase) compose(picked []domain.Option, idea string, custom map[string]string) string {
	names := make([]string, 0, 2)
	for _, o := range picked {
		if len(names) == 2 {
			break
		}
		names = append(names, o.Name)
	}
	joined := strings.Join(names, "/")

	switch {
	case idea != "":
		if len(picked) == 0 {
			return idea + "，精心设计的创意方案！"
		}
		return fmt.Sprintf("%s，融合%s风格，带来独特体验！", idea, joined)
	case len(custom) > 0:
		values := make([]string, 0, len(custom))
		for _, k := range domain.SortedKeys(custom) {
			values = append(values, custom[k])
		}
		c := strings.Join(values, " ")
		if len(picked) == 0 {
			return c + "，个性化创意表达！"
		}
		return fmt.Sprintf("%s，结合%s的创意元素！", c, joined)
	case len(picked) == 0:
		return genericContent
	}

	main := picked[g.rnd.IntN(len(picked))]
	if len(main.Templates) == 0 {
		return fmt.Sprintf("融合%s，带来全新体验！", joined)
	}
	tmpl := main.Templates[g.rnd.IntN(len(main.Templates))]
	out, missing := formatTemplate(tmpl, g.palette(main))
	if len(missing) > 0 {
		return fmt.Sprintf("体验%s的魅力，感受%s瞬间！", main.Name, g.pick(excitements))
	}
	return out
}

// palette fills the placeholders shared by the default catalog templates.
func (g *GeneratorUseCase) palette(o domain.Option) map[string]string {
	feature, item := "精彩内容", "神秘道具"
	if len(o.Keywords) > 0 {
		feature = g.pick(o.Keywords[:min(2, len(o.Keywords))])
		item = g.pick(o.Keywords)
	}
	return map[string]string{
		"game":           "这款游戏",
		"achievement":    g.pick(achievements),
		"call_to_action": g.pick(callsToAction),
		"feature":        feature,
		"world":          g.pick(worlds),
		"item":           item,
		"power":          g.pick(powers),
		"experience":     g.pick(experiences),
	}
}

func (g *GeneratorUseCase) pick(from []string) string {
	return from[g.rnd.IntN(len(from))]
}
