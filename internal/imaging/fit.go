package imaging

// Margin keeps a scaled image clear of the panel border.
const Margin = 20

// FitSize scales width x height for a panel of panelW x panelH. Landscape
// and square images fill the panel width, portrait images its height, each
// minus Margin. Aspect ratio is kept.
func FitSize(width, height, panelW, panelH int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	if width >= height {
		w := max(panelW-Margin, 1)
		h := max(int(float64(height)*float64(w)/float64(width)+0.5), 1)
		return w, h
	}

	h := max(panelH-Margin, 1)
	w := max(int(float64(width)*float64(h)/float64(height)+0.5), 1)
	return w, h
}
