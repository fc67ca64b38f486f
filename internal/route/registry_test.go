package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry([]string{"Home", "Details", "Settings"}, nil)
}

func TestRegistry_PushGeneratesUniqueKeys(t *testing.T) {
	r := newTestRegistry(t)

	a, err := r.Push("Details", nil)
	require.NoError(t, err)
	b, err := r.Push("Details", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	st := r.State()
	assert.Equal(t, []string{a, b}, st.Keys())
	assert.Equal(t, 1, st.Index)
}

func TestRegistry_PushUnknownScreen(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Push("Nope", nil)
	require.ErrorIs(t, err, ErrUnknownScreen)
	assert.Empty(t, r.State().Routes)
}

func TestRegistry_PushExplicitKey(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Dispatch(PushAction{Name: "Home", Key: "home"}))

	err := r.Dispatch(PushAction{Name: "Home", Key: "home"})
	require.Error(t, err)
	assert.Len(t, r.State().Routes, 1)
}

func TestRegistry_PopByKeyRemovesRouteAndAbove(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Dispatch(PushAction{Name: "Home", Key: "a"}))
	require.NoError(t, r.Dispatch(PushAction{Name: "Details", Key: "b"}))
	require.NoError(t, r.Dispatch(PushAction{Name: "Settings", Key: "c"}))

	require.NoError(t, r.Dispatch(PopAction{Key: "b"}))

	st := r.State()
	assert.Equal(t, []string{"a"}, st.Keys())
	assert.Equal(t, 0, st.Index)
}

func TestRegistry_PopUnknownKeyLeavesState(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Dispatch(PushAction{Name: "Home", Key: "a"}))

	err := r.Dispatch(PopAction{Key: "zzz"})
	require.ErrorIs(t, err, ErrUnknownRoute)
	assert.Equal(t, []string{"a"}, r.State().Keys())
}

func TestRegistry_BackOnEmptyStack(t *testing.T) {
	r := newTestRegistry(t)
	require.ErrorIs(t, r.Dispatch(BackAction{}), ErrEmptyStack)
}

func TestRegistry_StateIsSnapshot(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Dispatch(PushAction{Name: "Home", Key: "a"}))

	st := r.State()
	st.Routes[0].Key = "mutated"
	assert.Equal(t, []string{"a"}, r.State().Keys())
}

func TestRegistry_SubscribeAndUnsubscribe(t *testing.T) {
	r := newTestRegistry(t)
	var seen [][]string
	unsub := r.Subscribe(func(s NavigationState) { seen = append(seen, s.Keys()) })

	require.NoError(t, r.Dispatch(PushAction{Name: "Home", Key: "a"}))
	_ = r.Dispatch(PopAction{Key: "missing"})
	unsub()
	require.NoError(t, r.Dispatch(PushAction{Name: "Details", Key: "b"}))

	assert.Equal(t, [][]string{{"a"}}, seen)
}

func TestRegistry_OptionsFollowRouteLifetime(t *testing.T) {
	r := newTestRegistry(t)
	opts := Options{Title: "Profile", HeaderTitle: HeaderTitle("")}
	require.NoError(t, r.Dispatch(PushAction{Name: "Details", Key: "d", Options: opts}))

	assert.Equal(t, opts, r.Options("d"))

	require.NoError(t, r.Dispatch(PopAction{Key: "d"}))
	assert.Equal(t, Options{}, r.Options("d"))
}

func TestNavigation_BoundToKey(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Dispatch(PushAction{Name: "Home", Key: "a", Params: map[string]string{"id": "7"}}))

	nav := r.Navigation("a")
	assert.Equal(t, "a", nav.Key())
	assert.Equal(t, "7", nav.Params()["id"])

	require.NoError(t, nav.Push("Details", nil))
	assert.Len(t, r.State().Routes, 2)

	require.NoError(t, nav.Pop())
	assert.Empty(t, r.State().Routes)
	assert.Nil(t, nav.Params())
}

func TestOptions_Merge(t *testing.T) {
	base := Options{Title: "Base", HeaderTitle: HeaderTitle("Header")}

	got := base.Merge(Options{Title: "Override"})
	assert.Equal(t, "Override", got.Title)
	require.NotNil(t, got.HeaderTitle)
	assert.Equal(t, "Header", *got.HeaderTitle)

	got = base.Merge(Options{HeaderTitle: HeaderTitle("")})
	assert.Equal(t, "Base", got.Title)
	assert.Equal(t, "", *got.HeaderTitle)
}
