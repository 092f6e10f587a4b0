package inuge

import (
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cute-angelia/nuge/syntax/ijson"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComponent(t *testing.T, opts ...Option) (*Component, string) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "static")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!doctype html><title>nuge</title>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("console.log(1)"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0644))

	base := []Option{WithStaticDir(dir), WithLogger(zerolog.Nop()), WithApiLog(false)}
	return New(append(base, opts...)...), dir
}

func do(t *testing.T, c *Component, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, r)
	return w
}

func decodeNums(t *testing.T, w *httptest.ResponseRecorder) []int64 {
	t.Helper()

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var nums []int64
	require.NoError(t, ijson.Decode(w.Body.Bytes(), &nums))
	return nums
}

func TestRandomNoParams(t *testing.T) {
	c, _ := newTestComponent(t)

	nums := decodeNums(t, do(t, c, http.MethodGet, "/api/random", "", ""))
	assert.Len(t, nums, 1)
}

func TestRandomQueryRange(t *testing.T) {
	c, _ := newTestComponent(t)

	nums := decodeNums(t, do(t, c, http.MethodGet, "/api/random?min=1&max=6&count=50", "", ""))
	require.Len(t, nums, 50)
	for _, n := range nums {
		assert.GreaterOrEqual(t, n, int64(1))
		assert.LessOrEqual(t, n, int64(6))
	}
}

func TestRandomPostFixed(t *testing.T) {
	c, _ := newTestComponent(t)

	w := do(t, c, http.MethodPost, "/api/random", "application/json", `{"min": 5, "max": 5, "count": 3}`)
	assert.Equal(t, []int64{5, 5, 5}, decodeNums(t, w))
}

func TestRandomPostForcesJSON(t *testing.T) {
	c, _ := newTestComponent(t)

	w := do(t, c, http.MethodPost, "/api/random", "text/plain", `{"min": -2, "max": -2}`)
	assert.Equal(t, []int64{-2}, decodeNums(t, w))

	w = do(t, c, http.MethodPost, "/api/random", "", `{"count": 2}`)
	assert.Len(t, decodeNums(t, w), 2)
}

func TestRandomPostForm(t *testing.T) {
	c, _ := newTestComponent(t)

	w := do(t, c, http.MethodPost, "/api/random", "application/x-www-form-urlencoded", "min=7&max=7&count=2")
	assert.Equal(t, []int64{7, 7}, decodeNums(t, w))
}

func TestRandomCountClamp(t *testing.T) {
	c, _ := newTestComponent(t)

	cases := map[string]int{
		"count=5000":                  1000,
		"count=1000":                  1000,
		"count=0":                     1,
		"count=-3":                    1,
		"count=99999999999999999999":  1000,
		"count=-99999999999999999999": 1,
	}
	for q, want := range cases {
		nums := decodeNums(t, do(t, c, http.MethodGet, "/api/random?min=0&max=9&"+q, "", ""))
		assert.Len(t, nums, want, q)
	}
}

func TestRandomCountClampConfigured(t *testing.T) {
	c, _ := newTestComponent(t, WithMaxCount(10))

	nums := decodeNums(t, do(t, c, http.MethodGet, "/api/random?count=50", "", ""))
	assert.Len(t, nums, 10)
}

func TestRandomFullRange(t *testing.T) {
	c, _ := newTestComponent(t)

	nums := decodeNums(t, do(t, c, http.MethodGet, "/api/random?min=-9223372036854775808&max=9223372036854775807&count=20", "", ""))
	assert.Len(t, nums, 20)
}

func TestRandomMinGreaterThanMax(t *testing.T) {
	c, _ := newTestComponent(t)

	w := do(t, c, http.MethodGet, "/api/random?min=10&max=1", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "min > max"}`, w.Body.String())

	w = do(t, c, http.MethodPost, "/api/random", "application/json", `{"min": 3, "max": 2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "min > max"}`, w.Body.String())

	w = do(t, c, http.MethodGet, "/api/random?min=0&max=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "min > max"}`, w.Body.String())

	// 只给 min 时 max 取默认最大值，不会触发
	w = do(t, c, http.MethodGet, "/api/random?min=9223372036854775807", "", "")
	assert.Equal(t, []int64{math.MaxInt64}, decodeNums(t, w))
}

func TestRandomParseErrors(t *testing.T) {
	c, _ := newTestComponent(t)

	cases := []struct {
		method, target, contentType, body, field string
	}{
		{http.MethodGet, "/api/random?min=abc", "", "", "min"},
		{http.MethodGet, "/api/random?max=1.5", "", "", "max"},
		{http.MethodGet, "/api/random?count=ten", "", "", "count"},
		{http.MethodGet, "/api/random?min=99999999999999999999", "", "", "min"},
		{http.MethodPost, "/api/random", "application/json", `{"min": "x"}`, "min"},
		{http.MethodPost, "/api/random", "application/json", `{"max": 2.5}`, "max"},
		{http.MethodPost, "/api/random", "application/json", `{"count": true}`, "count"},
	}

	for _, tc := range cases {
		w := do(t, c, tc.method, tc.target, tc.contentType, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.target+tc.body)

		var res struct {
			Error string `json:"error"`
		}
		require.NoError(t, ijson.Decode(w.Body.Bytes(), &res))
		assert.True(t, strings.HasPrefix(res.Error, tc.field+": "), res.Error)
	}
}

func TestRandomMalformedBody(t *testing.T) {
	c, _ := newTestComponent(t)

	for _, body := range []string{`{"min": `, `[1, 2]`, `null`} {
		w := do(t, c, http.MethodPost, "/api/random", "application/json", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var res map[string]string
		require.NoError(t, ijson.Decode(w.Body.Bytes(), &res))
		assert.NotEmpty(t, res["error"], body)
	}

	w := do(t, c, http.MethodPost, "/api/random", "application/json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRandomMethodNotAllowed(t *testing.T) {
	c, _ := newTestComponent(t)

	w := do(t, c, http.MethodPut, "/api/random", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestResolveDefaults(t *testing.T) {
	min, max, count, err := RandomRequest{}.Resolve(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), min)
	assert.Equal(t, int64(math.MaxInt64), max)
	assert.Equal(t, 1, count)
}

func TestResolveReportsFirstBadField(t *testing.T) {
	var req RandomRequest
	require.NoError(t, req.Max.UnmarshalText([]byte("x")))
	require.NoError(t, req.Count.UnmarshalText([]byte("y")))

	_, _, _, err := req.Resolve(1000)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "max: "), err.Error())
}
