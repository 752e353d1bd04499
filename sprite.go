package batch

// Sprite is the active texture id plus the sub-region of that texture used
// to map UV coordinates onto subsequent shape geometry. The region may be
// expressed in UV space (the unit rectangle selects the whole texture) or
// in texel space, whichever the renderer's samplers expect.
//
// Changing only the region of the active sprite never forces a batch
// break; changing the texture id does.
type Sprite struct {
	Texture int32
	Region  Rect
}

// NoSprite returns the default sprite: no texture, full unit region.
func NoSprite() Sprite {
	return Sprite{Texture: TextureNone, Region: UnitRect()}
}
