package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvheat/bfs"
)

// BenchmarkBFS_Chain measures BFS on a rod of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	ns := make([]string, N+1)
	links := make([][2]string, N)
	for i := range ns {
		ns[i] = fmt.Sprintf("v%d", i)
		if i > 0 {
			links[i-1] = [2]string{ns[i-1], ns[i]}
		}
	}
	g, _ := net(b, ns, links...)
	topo := g.Topology()

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(topo, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1

	ns := make([]string, nodeCount)
	for i := range ns {
		ns[i] = fmt.Sprintf("%d", i+1)
	}
	var links [][2]string
	for i := 1; i <= (nodeCount-1)/2; i++ {
		links = append(links, [2]string{ns[i-1], ns[2*i-1]}, [2]string{ns[i-1], ns[2*i]})
	}
	g, _ := net(b, ns, links...)
	topo := g.Topology()

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + len(links)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(topo, 0)
	}
}
