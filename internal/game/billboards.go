package game

import (
	"chosenoffset.com/warren/internal/entity"
	"chosenoffset.com/warren/internal/render"
)

// buildBillboards flattens the session's entities into render billboards.
// Dead enemies stay visible as corpses on their final death frame; collected
// pickups disappear.
func buildBillboards(s *Session, textures *render.TextureSet) []render.Billboard {
	bbs := make([]render.Billboard, 0, len(s.Enemies)+len(s.Sprites))

	for _, e := range s.Enemies {
		frame := e.Frame
		if frame < 0 || frame >= len(textures.EnemyFrames) {
			frame = 0
		}
		bbs = append(bbs, render.Billboard{
			X:       e.X,
			Y:       e.Y,
			Texture: textures.EnemyFrames[frame],
			Scale:   e.Scale,
			Flash:   e.Flashing(),
		})
	}

	for _, sp := range s.Sprites {
		if !sp.Active {
			continue
		}
		var tex = textures.Decorations[sp.Frame%len(textures.Decorations)]
		if sp.Kind == entity.KindPickup {
			tex = textures.Pickups[sp.Pickup]
		}
		bbs = append(bbs, render.Billboard{
			X:       sp.X,
			Y:       sp.Y,
			Texture: tex,
			Scale:   sp.Scale,
		})
	}

	return bbs
}

// buildMarkers produces the minimap dots: alive enemies and uncollected
// pickups. The minimap itself filters them by fog visibility.
func buildMarkers(s *Session) []render.MapMarker {
	markers := make([]render.MapMarker, 0, len(s.Enemies)+len(s.Sprites))
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		markers = append(markers, render.MapMarker{X: e.X, Y: e.Y, Enemy: true})
	}
	for _, sp := range s.Sprites {
		if sp.Kind != entity.KindPickup || !sp.Active {
			continue
		}
		markers = append(markers, render.MapMarker{X: sp.X, Y: sp.Y})
	}
	return markers
}
