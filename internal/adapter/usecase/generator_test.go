package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/config/configs"
	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
	"creative-factory/internal/core/port/mocks"
)

func testGeneratorConfig() configs.Generator {
	return configs.Generator{
		DefaultCount: 5,
		MaxCount:     50,
		TargetRegion: "越南",
		Language:     "zh-CN",
		Audience:     "游戏玩家",
	}
}

func newTestGenerator(t *testing.T) (*GeneratorUseCase, *mocks.MockOptionRepository, *mocks.MockCreativeRepository, *mocks.MockCreativeLLM) {
	t.Helper()
	options := mocks.NewMockOptionRepository(t)
	creatives := mocks.NewMockCreativeRepository(t)
	llm := mocks.NewMockCreativeLLM(t)
	g := NewGeneratorUseCase(options, creatives, llm, testGeneratorConfig(), slog.New(slog.DiscardHandler), nil,
		WithRand(rand.New(rand.NewPCG(1, 2))))
	return g, options, creatives, llm
}

func visualHookOptions() []domain.Option {
	return []domain.Option{
		{
			ID:            1,
			Name:          "极近特写",
			Keywords:      []string{"细节", "纹理", "特写"},
			VisualHints:   []string{"特写镜头", "细节展示"},
			Templates:     []string{"每个细节都精雕细琢，感受{item}的质感！", "极致细节，{feature}尽在掌握！"},
			IsActive:      true,
			DimensionName: "visual_hook",
		},
		{
			ID:            2,
			Name:          "夸张透视",
			Keywords:      []string{"动感", "冲击", "细节"},
			VisualHints:   []string{"破框效果", "特写镜头"},
			Templates:     []string{"破框而出的{weapon}，震撼登场！", "超越边界，感受{power}的冲击！"},
			IsActive:      true,
			DimensionName: "visual_hook",
		},
	}
}

func assertDraftShape(t *testing.T, drafts []domain.Draft) {
	t.Helper()
	for i, d := range drafts {
		assert.Equal(t, i+1, d.Index)
		assert.NotEmpty(t, d.Content)
		assert.True(t, strings.HasPrefix(d.Content, strings.TrimSuffix(d.Title, ellipsis)),
			"title %q is not a prefix of %q", d.Title, d.Content)
		assert.LessOrEqual(t, utf8.RuneCountInString(d.Title), titleRunes+utf8.RuneCountInString(ellipsis))
		assert.Equal(t, dedup(d.Keywords), d.Keywords)
		assert.Equal(t, dedup(d.VisualHints), d.VisualHints)
	}
}

func TestGenerate_AIFailureAssemblesTemplates(t *testing.T) {
	g, options, _, llm := newTestGenerator(t)
	sel := domain.Selection{"visual_hook": {1, 2}}

	options.EXPECT().FindActiveOptions(mock.Anything, []int64{1, 2}).Return(visualHookOptions(), nil)
	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Return(nil, errors.New("upstream unavailable"))

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{Selection: sel, Count: 3})
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assertDraftShape(t, drafts)

	for _, d := range drafts {
		assert.Equal(t, domain.OriginTemplate, d.Origin)
		assert.False(t, d.AIGenerated)
		assert.Equal(t, []string{"visual_hook"}, d.ChosenDimensions)
		assert.Contains(t, d.DimensionDetails, "visual_hook")
		assert.Equal(t, sel, d.SelectedDimensions)
		assert.Equal(t, domain.ModeStructured, d.GenerationParams.Mode)
		assert.NotContains(t, d.Content, "{")
	}
	assert.Equal(t, drafts[0].GenerationParams.BatchID, drafts[2].GenerationParams.BatchID)
}

func TestGenerate_PadsShortAIList(t *testing.T) {
	g, _, _, llm := newTestGenerator(t)
	reply := "```json\n" + `{"creatives":[
		{"core_concept":"王冠觉醒","scene_description":"英雄举起王冠","keywords":["王冠","王冠","荣耀"]},
		{"core_concept":"破框一击","scene_description":"武器冲出画框"}
	]}` + "\n```"

	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "gpt-4o-mini").
		Return(&port.Completion{Content: reply, Model: "gpt-4o-mini"}, nil)

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{
		Count:    5,
		UserIdea: "古风仙侠手游",
		Model:    "gpt-4o-mini",
	})
	require.NoError(t, err)
	require.Len(t, drafts, 5)
	assertDraftShape(t, drafts)

	for _, d := range drafts[:2] {
		assert.Equal(t, domain.OriginAI, d.Origin)
		assert.True(t, d.AIGenerated)
	}
	for _, d := range drafts[2:] {
		assert.Equal(t, domain.OriginSynthetic, d.Origin)
		assert.False(t, d.AIGenerated)
		assert.True(t, d.FallbackGenerated)
	}
	assert.Equal(t, "英雄举起王冠", drafts[0].Title)
	assert.Equal(t, "英雄举起王冠", drafts[0].Content)
	assert.Equal(t, "王冠觉醒", drafts[0].CoreConcept)
	assert.Equal(t, []string{"王冠", "荣耀"}, drafts[0].Keywords)
	assert.Equal(t, "gpt-4o-mini", drafts[0].GenerationParams.ModelUsed)
}

func TestGenerate_AITitleIsCutFromContent(t *testing.T) {
	g, _, _, llm := newTestGenerator(t)
	reply := `[{"core_concept":"一个非常非常长的核心概念标题，远远超过二十个字的限制","scene_description":"少年剑客立于断桥之上，身后是燃烧的古城与漫天红叶，剑光划破夜空"}]`

	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Return(&port.Completion{Content: reply, Model: "gpt-4o-mini"}, nil)

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{Count: 1, UserIdea: "武侠"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assertDraftShape(t, drafts)
	assert.Equal(t, "少年剑客立于断桥之上，身后是燃烧的古城与...", drafts[0].Title)
}

func TestGenerate_TruncatesLongAIList(t *testing.T) {
	g, options, _, llm := newTestGenerator(t)

	options.EXPECT().FindActiveOptions(mock.Anything, []int64{1}).Return(visualHookOptions()[:1], nil)
	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Return(&port.Completion{Content: `[{"title":"一"},{"title":"二"},{"title":"三"}]`, Model: "gpt-5-nano"}, nil)

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{
		Selection: domain.Selection{"visual_hook": {1}},
		Count:     2,
	})
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "一", drafts[0].Title)
	assert.Equal(t, "二", drafts[1].Title)
	// Missing fields are filled from the selected options.
	assert.Equal(t, []string{"visual_hook"}, drafts[0].ChosenDimensions)
	assert.Equal(t, []string{"细节", "纹理", "特写"}, drafts[0].Keywords)
	assert.Equal(t, "极近特写", drafts[0].DimensionDetails["visual_hook"].Name)
}

func TestGenerate_UnparseableReplyAssemblesTemplates(t *testing.T) {
	g, options, _, llm := newTestGenerator(t)

	options.EXPECT().FindActiveOptions(mock.Anything, []int64{1, 2}).Return(visualHookOptions(), nil)
	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Return(&port.Completion{Content: `{"message":"sorry"}`}, nil)

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{
		Selection: domain.Selection{"visual_hook": {1, 2}},
		Count:     4,
	})
	require.NoError(t, err)
	require.Len(t, drafts, 4)
	for _, d := range drafts {
		assert.Equal(t, domain.OriginTemplate, d.Origin)
	}
}

func TestGenerate_SelectionUnderWrongDimensionIsIgnored(t *testing.T) {
	g, options, _, _ := newTestGenerator(t)

	// Option 1 belongs to visual_hook, so listing it under value_proof
	// resolves nothing and the model is never called.
	options.EXPECT().FindActiveOptions(mock.Anything, []int64{1}).Return(visualHookOptions()[:1], nil)

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{
		Selection: domain.Selection{"value_proof": {1}},
		Count:     2,
	})
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	for _, d := range drafts {
		assert.Equal(t, genericContent, d.Content)
		assert.Empty(t, d.ChosenDimensions)
		assert.NotNil(t, d.Keywords)
	}
}

func TestGenerate_PromptCarriesSelection(t *testing.T) {
	g, options, _, llm := newTestGenerator(t)

	options.EXPECT().FindActiveOptions(mock.Anything, []int64{1, 2}).Return(visualHookOptions(), nil)

	var got domain.CreativePrompt
	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Run(func(_ context.Context, prompt domain.CreativePrompt, _ string) { got = prompt }).
		Return(nil, errors.New("boom"))

	_, err := g.Generate(context.Background(), port.GenerateRequest{
		Selection:    domain.Selection{"visual_hook": {1, 2}},
		Count:        1,
		CustomInputs: map[string]string{"theme": "春节", "blank": "  "},
	})
	require.NoError(t, err)

	assert.Equal(t, taskCreativeGeneration, got.Task)
	assert.Empty(t, got.Instruction)
	assert.Equal(t, map[string]string{"theme": "春节"}, got.UserInput.CustomInputs)
	require.Len(t, got.Dimensions["visual_hook"], 2)
	assert.Equal(t, "极近特写", got.Dimensions["visual_hook"][0].Name)
	assert.Equal(t, 1, got.Requirements.Count)
	assert.Equal(t, "zh-CN", got.Requirements.Language)
	assert.Equal(t, "游戏玩家", got.Requirements.TargetAudience)
	assert.Equal(t, "structured_json", got.Requirements.OutputFormat)
	assert.Equal(t, "intelligent_mix", got.Instructions["combination_strategy"])
}

func TestGenerate_IdeaShapesTemplateContent(t *testing.T) {
	g, options, _, llm := newTestGenerator(t)

	options.EXPECT().FindActiveOptions(mock.Anything, []int64{1, 2}).Return(visualHookOptions(), nil)
	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").Return(nil, errors.New("boom"))

	drafts, err := g.Generate(context.Background(), port.GenerateRequest{
		Selection: domain.Selection{"visual_hook": {1, 2}},
		Count:     2,
		UserIdea:  "  末日求生  ",
	})
	require.NoError(t, err)
	for _, d := range drafts {
		assert.True(t, strings.HasPrefix(d.Content, "末日求生，融合"), d.Content)
		assert.Equal(t, "末日求生", d.GenerationParams.UserIdea)
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	g, _, _, _ := newTestGenerator(t)

	for _, count := range []int{0, -1, 51} {
		_, err := g.Generate(context.Background(), port.GenerateRequest{Count: count})
		assert.ErrorIs(t, err, port.ErrInvalidCount, "count %d", count)
	}
}

func TestGenerate_RepositoryError(t *testing.T) {
	g, options, _, _ := newTestGenerator(t)
	dbErr := errors.New("connection refused")

	options.EXPECT().FindActiveOptions(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := g.Generate(context.Background(), port.GenerateRequest{
		Selection: domain.Selection{"visual_hook": {1}},
		Count:     1,
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestGenerateSimple_EmptyBrief(t *testing.T) {
	g, _, _, _ := newTestGenerator(t)

	_, err := g.GenerateSimple(context.Background(), port.SimpleRequest{Brief: "   ", Count: 3})
	assert.ErrorIs(t, err, port.ErrEmptyBrief)
}

func TestGenerateSimple_AIFailureReturnsPlaceholders(t *testing.T) {
	g, _, _, llm := newTestGenerator(t)

	var got domain.CreativePrompt
	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Run(func(_ context.Context, prompt domain.CreativePrompt, _ string) { got = prompt }).
		Return(nil, errors.New("timeout"))

	drafts, err := g.GenerateSimple(context.Background(), port.SimpleRequest{Brief: "三国策略", Count: 3})
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assertDraftShape(t, drafts)

	assert.Equal(t, "基于三国策略的广告创意描述 #1", drafts[0].Content)
	assert.Equal(t, "三国策略的核心概念 #3", drafts[2].CoreConcept)
	assert.Contains(t, drafts[1].SceneDescription, "越南")
	for _, d := range drafts {
		assert.Equal(t, domain.OriginSynthetic, d.Origin)
		assert.Equal(t, domain.ModeSimple, d.GenerationParams.Mode)
		assert.Equal(t, noTextNotes, d.KeyNotes)
	}

	assert.Contains(t, got.Instruction, "三国策略")
	assert.Contains(t, got.Instruction, "3个")
	assert.Equal(t, "越南", got.UserInput.CustomInputs["target_region"])
	assert.Empty(t, got.Dimensions)
}

func TestGenerateSimple_TextReplySplitIntoDrafts(t *testing.T) {
	g, _, _, llm := newTestGenerator(t)
	reply := "第一个创意：主角在雨夜拔剑，霓虹倒映在刀锋上，城市在身后崩塌\n\n第二个创意：战旗升起"

	llm.EXPECT().GenerateCreativeContent(mock.Anything, mock.Anything, "").
		Return(&port.Completion{Content: reply, Model: "gpt-5-nano"}, nil)

	drafts, err := g.GenerateSimple(context.Background(), port.SimpleRequest{Brief: "武侠", Count: 3})
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assertDraftShape(t, drafts)

	assert.Equal(t, domain.OriginText, drafts[0].Origin)
	assert.True(t, strings.HasSuffix(drafts[0].Title, ellipsis))
	assert.Equal(t, "第二个创意：战旗升起", drafts[1].Content)
	assert.Equal(t, domain.OriginSynthetic, drafts[2].Origin)
}

func TestPersist(t *testing.T) {
	g, _, creatives, _ := newTestGenerator(t)
	sel := domain.Selection{"visual_hook": {1}}

	_, err := g.Persist(context.Background(), nil)
	assert.ErrorIs(t, err, port.ErrNoDrafts)

	creatives.EXPECT().CreateCreatives(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in []domain.Creative) ([]domain.Creative, error) {
			for i := range in {
				in[i].ID = int64(i + 1)
			}
			return in, nil
		})

	saved, err := g.Persist(context.Background(), []domain.Draft{
		{Title: "标题", Content: "内容", SelectedDimensions: sel},
		{Content: "这是一段超过二十个字符的广告创意内容，用于生成标题", GenerationParams: domain.GenerationParams{Selection: sel}},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, c := range saved {
		assert.Equal(t, domain.StatusSelected, c.Status)
		assert.True(t, c.IsSelected)
		assert.Equal(t, sel, c.SelectedDimensions)
	}
	assert.Equal(t, "标题", saved[0].Title)
	assert.Equal(t, "这是一段超过二十个字符的广告创意内容，用...", saved[1].Title)
}
