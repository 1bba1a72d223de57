package indicator

// Dot is a filled circle to paint.
type Dot struct {
	X      float64 `json:"x"      yaml:"x"`
	Y      float64 `json:"y"      yaml:"y"`
	Radius float64 `json:"radius" yaml:"radius"`
	// Alpha is the opacity in [0, 1]. Renderers scale it to their own range.
	Alpha float64 `json:"alpha"  yaml:"alpha"`
	// Page is the page index the dot stands for.
	Page int `json:"page"   yaml:"page"`
}

// Generate returns the dots to paint for s, from top to bottom. It does not
// modify its arguments and returns a new slice on every call.
func Generate(s State, l Layout) []Dot {
	if s.Total <= 0 {
		return nil
	}

	p := &painter{state: s, layout: l}
	windowed := s.Windowed(l.VisibleCount)

	switch m := s.Motion().(type) {
	case Settled:
		if windowed {
			p.settledWindow()
		} else {
			p.settled()
		}

	case Dragging:
		switch {
		case !windowed:
			p.dragging(m)
		case m.Forward():
			p.slideForward(m)
		default:
			p.slideBackward(m)
		}
	}

	return p.dots
}

type painter struct {
	dots   []Dot
	layout Layout
	state  State
}

// settled paints every page at full size, centered in the drawable area.
func (p *painter) settled() {
	var (
		s = p.state
		l = p.layout
		y = p.centeredStart()
	)

	for page := range s.Total {
		alpha := l.AlphaMin
		if page == s.Selected {
			alpha = l.AlphaMax
		}

		p.add(page, y, l.DotRadius, alpha)

		y += l.Step()
	}
}

// dragging crossfades the highlight between two pages, all dots at full size.
func (p *painter) dragging(d Dragging) {
	var (
		s = p.state
		l = p.layout
		y = p.centeredStart()
	)

	from, to := p.crossfade(d.Progress)

	for page := range s.Total {
		alpha := l.AlphaMin

		switch page {
		case d.From:
			alpha = from
		case d.To:
			alpha = to
		}

		p.add(page, y, l.DotRadius, alpha)

		y += l.Step()
	}
}

// settledWindow paints the window of dots. Dots at the edges of the window
// shrink unless the edge is the first or last page.
func (p *painter) settledWindow() {
	var (
		s     = p.state
		l     = p.layout
		count = l.VisibleCount
		last  = s.MaxWindowStart(count)
		y     = p.windowStart()
	)

	for i := range count {
		page := s.WindowStart + i

		radius := l.DotRadius

		switch {
		case i == 0:
			if s.WindowStart != 0 {
				radius = l.DotRadiusMin
			}
		case i == count-1:
			if s.WindowStart != last {
				radius = l.DotRadiusMin
			}
		}

		alpha := l.AlphaMin
		if page == s.Selected {
			alpha = l.AlphaMax
		}

		if (i != 0 || !p.aboveTop(y)) && (i != count-1 || !p.belowBottom(y)) {
			p.add(page, y, radius, alpha)
		}

		y += l.Step()
	}
}

// slideForward paints a drag toward a higher page. The window gets one extra
// dot at the bottom, which slides in while the top dot slides out.
func (p *painter) slideForward(d Dragging) {
	var (
		s      = p.state
		l      = p.layout
		t      = d.Progress
		count  = l.VisibleCount + 1
		half   = l.VisibleCount / 2
		last   = s.MaxWindowStart(l.VisibleCount)
		next   = s.Next - s.WindowStart
		pinned = s.pinned(l.VisibleCount)
		shrink = l.DotRadius - l.DotRadiusMin
		y      = p.windowStart() + s.WindowOffset
	)

	from, to := p.crossfade(t)

	for i := range count {
		page := s.WindowStart + i

		var radius float64

		switch {
		case i == 0:
			switch {
			case s.WindowStart != 0:
				radius = l.DotRadiusMin
			case next > half:
				radius = l.DotRadius - shrink*t
			default:
				radius = l.DotRadius
			}

		case i == 1:
			if pinned {
				radius = l.DotRadius
			} else {
				radius = l.DotRadius - shrink*t
			}

		case i == count-2:
			switch {
			case s.WindowStart == last:
				radius = l.DotRadius
			case pinned:
				radius = l.DotRadiusMin
			default:
				radius = l.DotRadiusMin + shrink*t
			}

		case i == count-1:
			switch {
			case s.WindowStart == last:
				radius = l.DotRadius
			case pinned:
				radius = l.DotRadiusMin
			case s.Next == s.Total-half-1:
				radius = l.DotRadiusMin + shrink*t
			default:
				radius = l.DotRadiusMin
			}

		default:
			radius = l.DotRadius
		}

		var alpha float64

		switch {
		case page == s.Selected:
			alpha = from
		case page == s.Next:
			alpha = to
		case i == 0 && !pinned && next > half:
			alpha = l.AlphaMin * (1 - t)
		case i == count-1 && !pinned:
			alpha = l.AlphaMin * t
		default:
			alpha = l.AlphaMin
		}

		if (i != 0 || !p.aboveTop(y)) && (i != count-1 || (!pinned && !p.belowBottom(y))) {
			p.add(page, y, radius, alpha)
		}

		y += l.Step()
	}
}

// slideBackward paints a drag toward a lower page. The window gets one extra
// dot at the top, which slides in while the bottom dot slides out.
//
// The edge rules are not a mirror image of [painter.slideForward]: the page
// that triggers growing or shrinking differs by one at the bottom end.
func (p *painter) slideBackward(d Dragging) {
	var (
		s      = p.state
		l      = p.layout
		t      = d.Progress
		count  = l.VisibleCount + 1
		half   = l.VisibleCount / 2
		pinned = s.pinned(l.VisibleCount)
		shrink = l.DotRadius - l.DotRadiusMin
		// Selected page at or past the point where the window stops sliding.
		nearEnd = s.Selected > s.Total-half-1
		y       = p.windowStart() + s.WindowOffset
	)

	// Without a slide the extra dot stays above the window.
	if pinned || !s.Windowed(l.VisibleCount) {
		y -= l.Step()
	}

	from, to := p.crossfade(t)

	for i := range count {
		page := s.WindowStart - 1 + i

		var radius float64

		switch {
		case i == 0:
			switch {
			case pinned:
				radius = l.DotRadius
			case s.Next == half:
				radius = l.DotRadiusMin + shrink*t
			default:
				radius = l.DotRadiusMin
			}

		case i == 1:
			switch {
			case s.WindowStart == 0:
				radius = l.DotRadius
			case nearEnd:
				radius = l.DotRadiusMin
			default:
				radius = l.DotRadiusMin + shrink*t
			}

		case i == 2:
			radius = l.DotRadius

		case i == count-2:
			switch {
			case s.WindowStart == 0, nearEnd:
				radius = l.DotRadius
			default:
				radius = l.DotRadius - shrink*t
			}

		case i == count-1:
			switch {
			case s.WindowStart == 0:
				radius = l.DotRadiusMin
			case nearEnd:
				radius = l.DotRadius
			case s.Selected == s.Total-half-1:
				radius = l.DotRadius - shrink*t
			default:
				radius = l.DotRadiusMin
			}

		default:
			radius = l.DotRadius
		}

		var alpha float64

		switch {
		case page == s.Selected:
			alpha = from
		case page == s.Next:
			alpha = to
		case i == count-1 && !pinned:
			alpha = l.AlphaMin * (1 - t)
		case i == 0 && !pinned:
			alpha = l.AlphaMin * t
		default:
			alpha = l.AlphaMin
		}

		if (i != 0 || (!pinned && !p.aboveTop(y))) && (i != count-1 || !p.belowBottom(y)) {
			p.add(page, y, radius, alpha)
		}

		y += l.Step()
	}
}

// crossfade returns the alpha of the page being left and of the page being
// approached. The two always sum to AlphaMin+AlphaMax.
func (p *painter) crossfade(progress float64) (float64, float64) {
	l := p.layout
	span := l.AlphaMax - l.AlphaMin

	return l.AlphaMax - span*progress, l.AlphaMin + span*progress
}

func (p *painter) add(page int, y, radius, alpha float64) {
	if page < 0 || page >= p.state.Total {
		return
	}

	p.dots = append(p.dots, Dot{
		X:      p.layout.Width / 2,
		Y:      y,
		Radius: radius,
		Alpha:  alpha,
		Page:   page,
	})
}

// windowStart is the center of the first window dot. The slot above it is
// reserved for a dot sliding in or out.
func (p *painter) windowStart() float64 {
	l := p.layout

	return l.PaddingTop + l.DotRadius + l.Step()
}

func (p *painter) centeredStart() float64 {
	var (
		l = p.layout
		n = float64(p.state.Total)
	)

	used := n*2*l.DotRadius + l.DotSpacing*(n-1)

	return l.PaddingTop + (l.drawHeight()-used)/2 + l.DotRadius
}

func (p *painter) aboveTop(y float64) bool {
	return y+p.layout.DotRadius < p.layout.PaddingTop
}

func (p *painter) belowBottom(y float64) bool {
	l := p.layout

	return y-l.DotRadius > l.Height-l.PaddingBottom
}
