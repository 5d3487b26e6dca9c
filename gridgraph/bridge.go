package gridgraph

// Bridge finds a minimum-conversion path of water cells joining any cell of
// component srcComp to any cell of component dstComp, as numbered by
// ConnectedComponents. Each water cell on the path costs 1.
// Returns the row-major cell indices of the path (land endpoints included)
// and the number of water cells to fill.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • stepping onto land  → cost 0 (pushed to the front)
//     • stepping onto water → cost 1 (pushed to the back)
//  3. Stop at the first dstComp cell popped.
//  4. Walk predecessors back to the source.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	n := gg.Width * gg.Height
	const unreached = -1
	dist := make([]int, n)
	prev := make([]int, n)
	target := make([]bool, n)
	for i := range dist {
		dist[i] = unreached
		prev[i] = -1
	}
	for _, i := range comps[dstComp] {
		target[i] = true
	}

	// Deque as two stacks: front holds cost-0 pushes, back is FIFO.
	var front, back []int
	for _, i := range comps[srcComp] {
		dist[i] = 0
		back = append(back, i)
	}
	pop := func() int {
		if k := len(front); k > 0 {
			u := front[k-1]
			front = front[:k-1]
			return u
		}
		u := back[0]
		back = back[1:]
		return u
	}

	end := -1
	for len(front)+len(back) > 0 {
		u := pop()
		if target[u] {
			end = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 1
			if gg.IsLand(vx, vy) {
				step = 0
			}
			nd := dist[u] + step
			if dist[v] == unreached || nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					front = append(front, v)
				} else {
					back = append(back, v)
				}
			}
		}
	}

	if end < 0 {
		return nil, 0, ErrNoPath
	}
	for at := end; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[end], nil
}
