package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReliefPoint_IsVerified(t *testing.T) {
	now := time.Now()

	pending := &ReliefPoint{}
	assert.False(t, pending.IsVerified())

	verified := &ReliefPoint{VerifiedAt: &now}
	assert.True(t, verified.IsVerified())
}

func TestReliefPoint_HasLocation(t *testing.T) {
	placeholder := &ReliefPoint{Lat: 0, Lng: 0}
	assert.False(t, placeholder.HasLocation())

	hue := &ReliefPoint{Lat: 16.4637, Lng: 107.5909}
	assert.True(t, hue.HasLocation())

	// A single zero axis is still a real position.
	equator := &ReliefPoint{Lat: 0, Lng: 105.0}
	assert.True(t, equator.HasLocation())
}

func TestParsePointStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want PointStatus
		ok   bool
	}{
		{"Open", StatusOpen, true},
		{"open", StatusOpen, true},
		{"CLOSED", StatusClosed, true},
		{" full ", StatusFull, true},
		{"verified", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePointStatus(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestPointStatus_Toggle(t *testing.T) {
	assert.Equal(t, StatusClosed, StatusOpen.Toggle())
	assert.Equal(t, StatusOpen, StatusClosed.Toggle())
	// Toggling away from Full reopens the point.
	assert.Equal(t, StatusOpen, StatusFull.Toggle())
}

func TestPointType_IsValid(t *testing.T) {
	for _, pt := range PointTypes() {
		assert.True(t, pt.IsValid(), "type %q", pt)
	}
	assert.False(t, PointType("Khác").IsValid())
}

func TestRole_Privileges(t *testing.T) {
	assert.True(t, RoleAdmin.CanDelete())
	assert.True(t, RoleAdmin.CanModerate())
	assert.False(t, RoleReviewer.CanDelete())
	assert.True(t, RoleReviewer.CanModerate())
	assert.False(t, Role("viewer").IsValid())
}

func TestAlbumImage_UnmarshalJSON(t *testing.T) {
	t.Run("bare URL string", func(t *testing.T) {
		var img AlbumImage
		require.NoError(t, json.Unmarshal([]byte(`"https://cdn.example.com/a.jpg"`), &img))
		assert.Equal(t, "https://cdn.example.com/a.jpg", img.ImageURL)
		assert.Empty(t, img.LinkURL)
	})

	t.Run("upstream object", func(t *testing.T) {
		var img AlbumImage
		raw := `{"image_file_uri":"https://cdn.example.com/b.jpg","url":"https://facebook.com/post/1"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &img))
		assert.Equal(t, "https://cdn.example.com/b.jpg", img.ImageURL)
		assert.Equal(t, "https://facebook.com/post/1", img.LinkURL)
	})

	t.Run("normalized round-trip", func(t *testing.T) {
		orig := AlbumImage{ImageURL: "https://cdn.example.com/c.jpg", LinkURL: "https://example.com"}
		data, err := json.Marshal(orig)
		require.NoError(t, err)

		var back AlbumImage
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, orig, back)
	})

	t.Run("mixed array", func(t *testing.T) {
		raw := `["https://cdn.example.com/a.jpg",{"image_file_uri":"https://cdn.example.com/b.jpg","url":"https://fb.com/p"}]`
		var album []AlbumImage
		require.NoError(t, json.Unmarshal([]byte(raw), &album))
		require.Len(t, album, 2)
		assert.Equal(t, "https://cdn.example.com/a.jpg", album[0].ImageURL)
		assert.Equal(t, "https://cdn.example.com/b.jpg", album[1].ImageURL)
	})
}
