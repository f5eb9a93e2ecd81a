package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionManager(client, "console_session", "secret", time.Hour, false), mr
}

func TestSessionFlashesSurviveRedirect(t *testing.T) {
	sm, _ := newTestSessions(t)
	ctx := context.Background()

	sess, err := sm.Load(ctx, httptest.NewRequest(http.MethodPost, "/clientes/create", nil))
	require.NoError(t, err)
	sess.AddFlash(FlashMessage{Kind: FlashSuccess, Message: "Cliente criado com sucesso!"})
	sess.AddFlash(FlashMessage{Kind: FlashError, Message: "Erro ao carregar clientes"})

	rr := httptest.NewRecorder()
	require.NoError(t, sm.Commit(ctx, rr, sess))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	next := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	next.AddCookie(cookies[0])
	loaded, err := sm.Load(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)

	flashes := loaded.PopFlashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, "Cliente criado com sucesso!", flashes[0].Message)
	assert.Equal(t, FlashError, flashes[1].Kind)
	assert.Nil(t, loaded.PopFlashes())

	require.NoError(t, sm.Commit(ctx, httptest.NewRecorder(), loaded))
	again, err := sm.Load(ctx, next)
	require.NoError(t, err)
	assert.Empty(t, again.PopFlashes())
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	sm, _ := newTestSessions(t)
	ctx := context.Background()

	sess, err := sm.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("k", "v")
	rr := httptest.NewRecorder()
	require.NoError(t, sm.Commit(ctx, rr, sess))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "console_session", Value: sess.ID + ".forged"})
	loaded, err := sm.Load(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, loaded.ID)
	assert.Empty(t, loaded.Get("k"))
}

func TestCSRFTokenLifecycle(t *testing.T) {
	sm, _ := newTestSessions(t)
	csrf := NewCSRFManager("csrf-secret")

	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	token, err := csrf.EnsureToken(sess)
	require.NoError(t, err)
	again, err := csrf.EnsureToken(sess)
	require.NoError(t, err)
	assert.Equal(t, token, again)

	assert.NoError(t, csrf.VerifyToken(sess, token))
	assert.ErrorIs(t, csrf.VerifyToken(sess, ""), ErrCSRFTokenMissing)
	assert.ErrorIs(t, csrf.VerifyToken(sess, token+"x"), ErrCSRFTokenMismatch)
	assert.ErrorIs(t, csrf.VerifyToken(nil, token), ErrCSRFTokenMissing)
}

func TestAddFlashWithoutSession(t *testing.T) {
	assert.False(t, AddFlash(context.Background(), FlashError, "x"))

	sess := &Session{ID: "s"}
	ctx := ContextWithSession(context.Background(), sess)
	assert.True(t, AddFlash(ctx, FlashWarning, "y"))
	assert.Equal(t, []FlashMessage{{Kind: FlashWarning, Message: "y"}}, sess.PopFlashes())
}
