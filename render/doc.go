// SPDX-License-Identifier: MIT

// Package render writes structures as Graphviz DOT.
//
//   - WriteDOT: vertices (optionally highlighted, e.g. a dominating set) and
//     edges styled by their color attribute.
//   - WriteBlocksDOT: a triple system drawn as its star expansion, one small
//     box node per block joined to its three points.
//
// Both accept label lines (bounds, sizes) shown as the graph label. Output is
// deterministic: vertices ascend and edges follow ID order.
package render
