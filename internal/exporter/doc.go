// Package exporter turns computed report figures into artifacts: the plain-text
// management report and the optional per-product revenue breakdown CSV.
package exporter
