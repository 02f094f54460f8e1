package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func prefix(p string) PathFunc {
	return func(name string) (string, error) { return p + name, nil }
}

func TestBuildPairsSlidesAndThumbs(t *testing.T) {
	t.Parallel()

	g, err := Build("2536 Desoto St.", []string{"a.jpg", "b.png", "c.jpg"}, prefix("img/"), prefix("thumb/"))
	require.NoError(t, err)
	require.Len(t, g.Slides, 3)
	require.Len(t, g.Thumbs, 3)
	for i := range g.Slides {
		require.Equal(t, i, g.Slides[i].Index)
		require.Equal(t, i, g.Thumbs[i].Slide, "thumbnail must target its own slide")
	}
	require.Equal(t, "img/b.png", g.Slides[1].Src)
	require.Equal(t, "thumb/b.png", g.Thumbs[1].Src)
	require.Equal(t, "2536 Desoto St. - Image 2", g.Slides[1].Alt)
	require.Equal(t, "2536 Desoto St. - Thumbnail 3", g.Thumbs[2].Alt)
	require.False(t, g.Empty())
}

func TestBuildPropagatesResolverErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Build("x", []string{"a.jpg"}, prefix(""), func(string) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
}

func TestCarouselSlide(t *testing.T) {
	t.Parallel()

	loop := Carousel{Len: 3, Loop: true}
	require.Equal(t, 0, loop.Slide(3))
	require.Equal(t, 2, loop.Slide(-1))

	flat := Carousel{Len: 3}
	require.Equal(t, 2, flat.Slide(7))
	require.Equal(t, 0, flat.Slide(-4))

	require.Equal(t, 0, Carousel{}.Slide(5))
}

func TestPlayerStateMachine(t *testing.T) {
	t.Parallel()

	var p Player
	require.Equal(t, Idle, p.State())
	require.Equal(t, "idle", p.State().String())

	require.True(t, p.Click(), "first click starts playback")
	require.Equal(t, Playing, p.State())
	require.False(t, p.Click(), "click while playing is a no-op")
	require.Equal(t, Playing, p.State())

	p.Ended()
	require.Equal(t, Idle, p.State())
	require.True(t, p.Click(), "playback can restart after ending")
}
