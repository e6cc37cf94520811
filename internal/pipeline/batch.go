package pipeline

import "github.com/radiolabs/psmareport/internal/backend"

// batches partitions requests in order into groups of at most size. For N
// requests this yields ceil(N/size) groups; the last one may be short.
func batches(reqs []backend.Request, size int) [][]backend.Request {
	if size <= 0 {
		size = 1
	}
	var out [][]backend.Request
	for len(reqs) > 0 {
		n := size
		if n > len(reqs) {
			n = len(reqs)
		}
		out = append(out, reqs[:n])
		reqs = reqs[n:]
	}
	return out
}
