package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// rgb888From565 expands with bit replication so full-scale channels map back
// to 255.
func rgb888From565(p uint16) (r, g, b uint8) {
	rr := uint8((p >> 11) & 0x1F)
	gg := uint8((p >> 5) & 0x3F)
	bb := uint8(p & 0x1F)
	return rr<<3 | rr>>2, gg<<2 | gg>>4, bb<<3 | bb>>2
}
