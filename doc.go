// Package catkit is your in-memory playground for category theory — small
// abstract-algebra interfaces and concrete categories built to be read,
// composed, and tested.
//
// 🚀 What is catkit?
//
//	A compact, teaching-first library that brings together:
//		• Contracts: Category and Functor interfaces over generic object/morphism types
//		• Boxed handles: erase heterogeneous categories/functors into one uniform shape
//		• Kitten: the category whose objects are categories and morphisms are functors
//		• FinSet: finite sets and total functions, the canonical first example
//		• FinCat: finite ordinals {1..n} with index-table morphisms
//		• MatCat: natural numbers with matrices as morphisms, composition = multiplication
//		• Indicator: the Fin → Mat functor turning functions into 0/1 matrices
//
// ✨ Why choose catkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Law-driven – identity, associativity and functor laws spelled out and property-tested
//   - Pure Go – no cgo, no hidden deps, every value immutable and shareable
//   - Extensible – implement Category once and your type composes with everything here
//
// Under the hood, everything is organized under five subpackages:
//
//	category/ — Category & Functor contracts, Unimplemented bases, boxed handles
//	kitten/   — identity functor, lazy composed functor, the category of categories
//	finset/   — finite sets, total functions, and their category
//	fincat/   — finite ordinals, index-table morphisms, and the Indicator functor
//	matcat/   — dense matrices and the matrix category
//
// Quick ASCII example:
//
//	    {1,2} ──f──▶ {3,4}
//	      │            │
//	     id            g
//	      ▼            ▼
//	    {1,2} ─g∘f─▶ {5,6}
//
//	compose f: 1↦3, 2↦4 with g: 3↦5, 4↦6 and you get 1↦5, 2↦6 — the same
//	diagram a lecture would draw, executable and checked.
//
// Next up: product and opposite categories, natural transformations, and
// more worked functors. Dive into the per-package doc.go files for laws,
// error contracts and complexity notes.
//
//	go get github.com/katalvlaran/catkit
package catkit
