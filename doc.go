// Command and library suite spectra computes 2D spectral embeddings of
// undirected graphs.
//
// A CSR graph store (core) and BFS primitive (bfs) feed a multilevel
// coarsener (coarsen), a sparse transition-matrix builder (transition), an
// HDE initializer (hde), Koren's power iteration (koren), and a Tutte
// smoother (tutte). spectral wires these into a single pipeline driven by
// Options; edgeio and config handle file I/O and YAML tunables; render
// rasterizes the result; cmd/spectra is the CLI entry point.
package spectra
