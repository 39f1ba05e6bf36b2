package telegram

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// call is one request seen by fakeAPI.
type call struct {
	Method string
	Body   map[string]any
}

// fakeAPI is a Bot API stand-in. reply picks the response for each call by
// method; an unset method answers {"ok":true,"result":true}.
type fakeAPI struct {
	t   *testing.T
	srv *httptest.Server

	mu    sync.Mutex
	calls []call
	reply map[string]func(n int) (status int, body string)
}

const testToken = "123:abc"

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, reply: map[string]func(int) (int, string){}}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *Client { return NewClient(f.srv.URL, testToken) }

func (f *fakeAPI) on(method string, fn func(n int) (int, string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply[method] = fn
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	prefix := "/bot" + testToken + "/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	method := strings.TrimPrefix(r.URL.Path, prefix)

	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.calls = append(f.calls, call{Method: method, Body: body})
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	fn := f.reply[method]
	f.mu.Unlock()

	status, resp := http.StatusOK, `{"ok":true,"result":true}`
	if fn != nil {
		status, resp = fn(n)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

func (f *fakeAPI) callsTo(method string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}
