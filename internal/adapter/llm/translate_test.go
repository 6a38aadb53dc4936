package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translationServer(t *testing.T, reply string, captured *[]Message) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if captured != nil {
			*captured = body.Messages
		}
		writeJSON(t, w, http.StatusOK, chatReply(reply))
	}))
}

func TestTranslatePadsMissingLinesWithOriginals(t *testing.T) {
	var messages []Message
	srv := translationServer(t, "1. 游戏\n2. 手游\n\n3. 电竞", &messages)
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	texts := []string{"trò chơi", "game mobile", "thể thao điện tử", "liên quân"}
	got, err := c.Translate(context.Background(), texts, "gpt-4o-mini", "", "VN")
	require.NoError(t, err)
	assert.Equal(t, []string{"游戏", "手游", "电竞", "liên quân"}, got)

	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Content, "Tiếng Việt")
	assert.Contains(t, messages[1].Content, "4. liên quân")
}

func TestTranslateTruncatesExtraLines(t *testing.T) {
	srv := translationServer(t, "- 一\n• 二\n3. 三", nil)
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	got, err := c.Translate(context.Background(), []string{"one", "two"}, "gpt-4o-mini", "English", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"一", "二"}, got)
}

func TestTranslateKeepsLeadingDigits(t *testing.T) {
	srv := translationServer(t, "1. 2048游戏\n2) 5G手机\n3、 7天酒店\n4G网络", nil)
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	got, err := c.Translate(context.Background(), []string{"2048 game", "5G phone", "7 Days Inn", "4G network"}, "gpt-4o-mini", "English", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2048游戏", "5G手机", "7天酒店", "4G网络"}, got)
}

func TestTranslateEmptyInputMakesNoCall(t *testing.T) {
	c := newTestClient(t, testConfig("http://127.0.0.1:0"))
	got, err := c.Translate(context.Background(), nil, "gpt-4o-mini", "", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranslateReturnsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))
	_, err := c.Translate(context.Background(), []string{"x"}, "gpt-4o-mini", "", "TH")
	assert.Equal(t, KindUnavailable, KindOf(err))
}

func TestSourceLanguageFor(t *testing.T) {
	assert.Equal(t, "ภาษาไทย", sourceLanguageFor("th", ""))
	assert.Equal(t, "Bahasa Indonesia", sourceLanguageFor("ID", "English"))
	assert.Equal(t, "Deutsch", sourceLanguageFor("DE", "Deutsch"))
	assert.Equal(t, "English", sourceLanguageFor("", ""))
}
