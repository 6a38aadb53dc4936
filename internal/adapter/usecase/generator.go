package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"creative-factory/internal/config/configs"
	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
	"creative-factory/internal/metrics"
)

const (
	titleRunes = 20
	ellipsis   = "..."

	taskCreativeGeneration = "creative_advertising_generation"
	genericIdea            = "根据选中的维度自由组合，生成多样化的手机游戏广告创意"
	genericContent         = "基于您的选择生成的精彩创意内容！"
	noTextNotes            = "画面中严禁出现任何文字、Logo、字幕与标识"
)

const simpleInstruction = `请为以下手机游戏生成%d个广告创意，面向%s市场投放。

游戏背景：%s

每个创意需要包含核心概念、画面描述、镜头与光线、色彩与道具、注意事项。`

// errUnstructured marks a model reply that holds no creative objects.
var errUnstructured = errors.New("model reply is not a list of creatives")

// GeneratorUseCase implements port.GeneratorUseCase. The random source is
// shared by concurrent requests and guarded by mu.
type GeneratorUseCase struct {
	options   port.OptionRepository
	creatives port.CreativeRepository
	llm       port.CreativeLLM
	cfg       configs.Generator
	logger    *slog.Logger
	metrics   *metrics.Metrics

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// GeneratorOption customises a GeneratorUseCase.
type GeneratorOption func(*GeneratorUseCase)

// WithRand fixes the random source, e.g. for reproducible tests.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *GeneratorUseCase) { g.rnd = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *GeneratorUseCase) { g.now = now }
}

// NewGeneratorUseCase wires the generator. m may be nil.
func NewGeneratorUseCase(
	options port.OptionRepository,
	creatives port.CreativeRepository,
	llm port.CreativeLLM,
	cfg configs.Generator,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...GeneratorOption,
) *GeneratorUseCase {
	g := &GeneratorUseCase{
		options:   options,
		creatives: creatives,
		llm:       llm,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "generator")),
		metrics:   m,
		rnd:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns exactly req.Count drafts.
func (g *GeneratorUseCase) Generate(ctx context.Context, req port.GenerateRequest) ([]domain.Draft, error) {
	if err := g.checkCount(req.Count); err != nil {
		return nil, err
	}
	resolved, err := g.resolve(ctx, req.Selection)
	if err != nil {
		return nil, fmt.Errorf("resolve options: %w", err)
	}

	idea := strings.TrimSpace(req.UserIdea)
	custom := compactInputs(req.CustomInputs)
	params := g.params(domain.ModeStructured, req.Count, req.Model)
	params.Selection = req.Selection
	params.UserIdea = idea
	params.CustomInputs = custom

	var drafts []domain.Draft
	if len(resolved) > 0 || idea != "" || len(custom) > 0 {
		drafts, err = g.generateWithAI(ctx, resolved, req, idea, custom, &params)
		if err != nil {
			g.logger.Warn("ai generation failed, assembling from templates",
				slog.String("batch_id", params.BatchID),
				slog.Any("error", err))
			drafts = nil
		}
	}
	if drafts == nil {
		drafts = g.assemble(resolved, req.Count, idea, custom, params)
	}

	for i := range drafts {
		drafts[i].Index = i + 1
		drafts[i].SelectedDimensions = req.Selection
		drafts[i].GenerationParams = params
	}
	g.countDrafts(domain.ModeStructured, drafts)
	return drafts, nil
}

// GenerateSimple returns exactly req.Count drafts for a plain brief.
func (g *GeneratorUseCase) GenerateSimple(ctx context.Context, req port.SimpleRequest) ([]domain.Draft, error) {
	brief := strings.TrimSpace(req.Brief)
	if brief == "" {
		return nil, port.ErrEmptyBrief
	}
	if err := g.checkCount(req.Count); err != nil {
		return nil, err
	}

	instruction := fmt.Sprintf(simpleInstruction, req.Count, g.cfg.TargetRegion, brief)
	params := g.params(domain.ModeSimple, req.Count, req.Model)
	params.UserIdea = brief
	params.Template = instruction

	prompt := domain.CreativePrompt{
		Task:        taskCreativeGeneration,
		Instruction: instruction,
		UserInput: domain.PromptUserInput{
			Idea:         brief,
			CustomInputs: map[string]string{"target_region": g.cfg.TargetRegion},
		},
		Dimensions: map[string][]domain.PromptOption{},
		Requirements: domain.PromptRequirements{
			Count:    req.Count,
			Language: g.cfg.Language,
		},
	}

	var drafts []domain.Draft
	res, err := g.llm.GenerateCreativeContent(ctx, prompt, req.Model)
	if err != nil {
		g.logger.Warn("ai generation failed, returning placeholders",
			slog.String("batch_id", params.BatchID),
			slog.Any("error", err))
		drafts = g.placeholders(brief, req.Count)
	} else {
		params.ModelUsed = res.Model
		if parsed, ok := parseCreatives(res.Content); ok {
			drafts = aiDrafts(parsed, req.Count, nil)
		} else {
			drafts = textDrafts(res.Content, req.Count)
		}
		drafts = padDrafts(drafts, req.Count, brief)
	}

	for i := range drafts {
		drafts[i].Index = i + 1
		drafts[i].GenerationParams = params
	}
	g.countDrafts(domain.ModeSimple, drafts)
	return drafts, nil
}

// Persist stores drafts as selected creatives.
func (g *GeneratorUseCase) Persist(ctx context.Context, drafts []domain.Draft) ([]domain.Creative, error) {
	if len(drafts) == 0 {
		return nil, port.ErrNoDrafts
	}
	creatives := make([]domain.Creative, 0, len(drafts))
	for i, d := range drafts {
		selection := d.SelectedDimensions
		if selection == nil {
			selection = d.GenerationParams.Selection
		}
		if selection == nil {
			selection = domain.Selection{}
		}
		title := strings.TrimSpace(d.Title)
		if title == "" {
			title = truncateTitle(d.Content)
		}
		if title == "" {
			title = fmt.Sprintf("创意 #%d", i+1)
		}
		creatives = append(creatives, domain.Creative{
			Title:              title,
			Content:            d.Content,
			SelectedDimensions: selection,
			Status:             domain.StatusSelected,
			IsSelected:         true,
			GenerationParams:   d.GenerationParams,
		})
	}
	saved, err := g.creatives.CreateCreatives(ctx, creatives)
	if err != nil {
		return nil, fmt.Errorf("save creatives: %w", err)
	}
	g.logger.Info("creatives saved", slog.Int("count", len(saved)))
	return saved, nil
}

// ListCreatives returns persisted creatives matching filter, newest
// first.
func (g *GeneratorUseCase) ListCreatives(ctx context.Context, filter domain.CreativeFilter) ([]domain.Creative, error) {
	return g.creatives.ListCreatives(ctx, filter)
}

func (g *GeneratorUseCase) checkCount(count int) error {
	if count < 1 {
		return port.ErrInvalidCount
	}
	if g.cfg.MaxCount > 0 && count > g.cfg.MaxCount {
		return fmt.Errorf("%w: at most %d", port.ErrInvalidCount, g.cfg.MaxCount)
	}
	return nil
}

func (g *GeneratorUseCase) params(mode domain.GenerationMode, count int, model string) domain.GenerationParams {
	return domain.GenerationParams{
		BatchID:   uuid.NewString(),
		Mode:      mode,
		Count:     count,
		Model:     model,
		Timestamp: g.now().UTC(),
	}
}

// resolvedDimension groups the usable options selected for one dimension.
type resolvedDimension struct {
	name    string
	options []domain.Option
}

// resolve keeps the active options of active dimensions that were selected
// under their own dimension's name, in catalog order.
func (g *GeneratorUseCase) resolve(ctx context.Context, sel domain.Selection) ([]resolvedDimension, error) {
	if sel.Empty() {
		return nil, nil
	}
	options, err := g.options.FindActiveOptions(ctx, sel.OptionIDs())
	if err != nil {
		return nil, err
	}

	var out []resolvedDimension
	index := map[string]int{}
	for _, o := range options {
		if !containsID(sel[o.DimensionName], o.ID) {
			continue
		}
		i, ok := index[o.DimensionName]
		if !ok {
			i = len(out)
			index[o.DimensionName] = i
			out = append(out, resolvedDimension{name: o.DimensionName})
		}
		out[i].options = append(out[i].options, o)
	}
	return out, nil
}

func (g *GeneratorUseCase) generateWithAI(
	ctx context.Context,
	resolved []resolvedDimension,
	req port.GenerateRequest,
	idea string,
	custom map[string]string,
	params *domain.GenerationParams,
) ([]domain.Draft, error) {
	prompt := g.buildPrompt(resolved, req.Count, idea, custom)
	res, err := g.llm.GenerateCreativeContent(ctx, prompt, req.Model)
	if err != nil {
		return nil, err
	}
	parsed, ok := parseCreatives(res.Content)
	if !ok {
		return nil, errUnstructured
	}
	params.ModelUsed = res.Model
	return padDrafts(aiDrafts(parsed, req.Count, resolved), req.Count, idea), nil
}

func (g *GeneratorUseCase) buildPrompt(resolved []resolvedDimension, count int, idea string, custom map[string]string) domain.CreativePrompt {
	dims := make(map[string][]domain.PromptOption, len(resolved))
	for _, d := range resolved {
		opts := make([]domain.PromptOption, 0, len(d.options))
		for _, o := range d.options {
			opts = append(opts, domain.PromptOption{
				Name:        o.Name,
				Description: o.Description,
				Keywords:    nonNilStrings(o.Keywords),
				VisualHints: nonNilStrings(o.VisualHints),
			})
		}
		dims[d.name] = opts
	}
	if custom == nil {
		custom = map[string]string{}
	}
	prompt := domain.CreativePrompt{
		Task:       taskCreativeGeneration,
		UserInput:  domain.PromptUserInput{Idea: idea, CustomInputs: custom},
		Dimensions: dims,
		Requirements: domain.PromptRequirements{
			Count:          count,
			Language:       g.cfg.Language,
			TargetAudience: g.cfg.Audience,
			ContentType:    "广告创意",
			OutputFormat:   "structured_json",
		},
		Instructions: map[string]string{
			"combination_strategy": "intelligent_mix",
			"creativity_level":     "high",
			"relevance_priority":   "user_input_first",
			"diversity":            "ensure_variety",
		},
	}
	if idea == "" && len(custom) == 0 {
		prompt.Instruction = genericIdea
	}
	return prompt
}

// aiDrafts converts parsed objects, at most count of them. Keywords and
// hints missing from an object are taken from the resolved options.
func aiDrafts(parsed []parsedCreative, count int, resolved []resolvedDimension) []domain.Draft {
	if len(parsed) > count {
		parsed = parsed[:count]
	}
	var (
		dimNames          []string
		keywords, visuals []string
		picked            = map[string]domain.OptionDetail{}
	)
	for _, d := range resolved {
		dimNames = append(dimNames, d.name)
		picked[d.name] = d.options[0].Detail()
		for _, o := range d.options {
			keywords = append(keywords, o.Keywords...)
			visuals = append(visuals, o.VisualHints...)
		}
	}

	drafts := make([]domain.Draft, 0, count)
	for i, p := range parsed {
		content := firstNonEmpty(p.SceneDescription, p.Content, p.CoreConcept, p.Title, fmt.Sprintf("创意 #%d", i+1))
		d := domain.Draft{
			Title:            truncateTitle(content),
			Content:          content,
			CoreConcept:      p.CoreConcept,
			SceneDescription: p.SceneDescription,
			CameraLighting:   p.CameraLighting,
			ColorProps:       p.ColorProps,
			KeyNotes:         p.KeyNotes,
			ChosenDimensions: p.ChosenDimensions,
			DimensionDetails: p.DimensionDetails,
			Keywords:         p.Keywords,
			VisualHints:      p.VisualHints,
			AIGenerated:      true,
			Origin:           domain.OriginAI,
		}
		if len(d.ChosenDimensions) == 0 {
			d.ChosenDimensions = nonNilStrings(dimNames)
		}
		if len(d.DimensionDetails) == 0 {
			d.DimensionDetails = copyDetails(picked)
		}
		if len(d.Keywords) == 0 {
			d.Keywords = dedup(keywords)
		}
		if len(d.VisualHints) == 0 {
			d.VisualHints = dedup(visuals)
		}
		drafts = append(drafts, d)
	}
	return drafts
}

// textDrafts cuts an unstructured reply into paragraphs, one draft each.
func textDrafts(raw string, count int) []domain.Draft {
	chunks := splitChunks(raw)
	if len(chunks) > count {
		chunks = chunks[:count]
	}
	drafts := make([]domain.Draft, 0, count)
	for _, chunk := range chunks {
		drafts = append(drafts, domain.Draft{
			Title:             truncateTitle(chunk),
			Content:           chunk,
			ChosenDimensions:  []string{},
			DimensionDetails:  map[string]domain.OptionDetail{},
			Keywords:          []string{},
			VisualHints:       []string{},
			AIGenerated:       true,
			Origin:            domain.OriginText,
			FallbackGenerated: true,
		})
	}
	return drafts
}

// padDrafts appends synthetic drafts until there are count of them.
func padDrafts(drafts []domain.Draft, count int, basis string) []domain.Draft {
	if basis == "" {
		basis = "基于您的输入生成的创意内容"
	}
	for i := len(drafts); i < count; i++ {
		content := fmt.Sprintf("%s（创意 #%d）", basis, i+1)
		drafts = append(drafts, domain.Draft{
			Title:             truncateTitle(content),
			Content:           content,
			ChosenDimensions:  []string{},
			DimensionDetails:  map[string]domain.OptionDetail{},
			Keywords:          []string{},
			VisualHints:       []string{},
			Origin:            domain.OriginSynthetic,
			FallbackGenerated: true,
		})
	}
	return drafts
}

// placeholders stands in for a failed brief-based generation.
func (g *GeneratorUseCase) placeholders(brief string, count int) []domain.Draft {
	drafts := make([]domain.Draft, 0, count)
	for i := 1; i <= count; i++ {
		content := fmt.Sprintf("基于%s的广告创意描述 #%d", brief, i)
		drafts = append(drafts, domain.Draft{
			Title:             truncateTitle(content),
			Content:           content,
			CoreConcept:       fmt.Sprintf("%s的核心概念 #%d", brief, i),
			SceneDescription:  fmt.Sprintf("基于%s的画面描述，适合在%s市场推广", brief, g.cfg.TargetRegion),
			CameraLighting:    "标准镜头和光线设置",
			ColorProps:        "符合主题的色彩和道具配置",
			KeyNotes:          noTextNotes,
			ChosenDimensions:  []string{},
			DimensionDetails:  map[string]domain.OptionDetail{},
			Keywords:          []string{},
			VisualHints:       []string{},
			Origin:            domain.OriginSynthetic,
			FallbackGenerated: true,
		})
	}
	return drafts
}

func (g *GeneratorUseCase) countDrafts(mode domain.GenerationMode, drafts []domain.Draft) {
	counts := map[domain.DraftOrigin]int{}
	for _, d := range drafts {
		counts[d.Origin]++
	}
	for origin, n := range counts {
		g.metrics.CountDrafts(string(mode), string(origin), n)
	}
}

// compactInputs drops blank custom fields; nil when nothing is left.
func compactInputs(in map[string]string) map[string]string {
	var out map[string]string
	for k, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			if out == nil {
				out = map[string]string{}
			}
			out[k] = v
		}
	}
	return out
}

func copyDetails(in map[string]domain.OptionDetail) map[string]domain.OptionDetail {
	out := make(map[string]domain.OptionDetail, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
