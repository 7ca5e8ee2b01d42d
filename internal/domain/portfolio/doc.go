// Package portfolio defines the gallery images shown in the portfolio section.
package portfolio
