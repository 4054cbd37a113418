package regex

// Simplify returns a canonical, language-equivalent rewrite of r: nested
// Unions and Concats are flattened, Empty/Epsilon identities are folded
// away, singleton Unions/Concats collapse to their one child, a
// {Epsilon, x} Union becomes Repeat(x, 0, 1), and common prefixes among a
// Union's children are left-factored out into a Concat. The driver
// recurses bottom-up so that every rewrite operates on already-simplified
// children.
func (r REG[V]) Simplify() REG[V] {
	switch r.k {
	case kindEmpty, kindEpsilon, kindDot, kindLetter:
		return r
	case kindUnion:
		return simplifyUnion(r)
	case kindConcat:
		return simplifyConcat(r)
	case kindRepeat:
		return simplifyRepeat(r)
	default:
		return r
	}
}

func equalReg[V Symbol](a, b REG[V]) bool {
	if a.k != b.k {
		return false
	}
	switch a.k {
	case kindLetter:
		return a.letter == b.letter
	case kindRepeat:
		if a.min != b.min || a.max != b.max {
			return false
		}
		return equalReg(*a.repeated, *b.repeated)
	case kindUnion, kindConcat:
		if len(a.children) != len(b.children) {
			return false
		}
		if a.k == kindConcat {
			for i := range a.children {
				if !equalReg(a.children[i], b.children[i]) {
					return false
				}
			}
			return true
		}
		// Union has set semantics: every child of a must have a match in b.
		used := make([]bool, len(b.children))
		for _, ac := range a.children {
			found := false
			for j, bc := range b.children {
				if used[j] {
					continue
				}
				if equalReg(ac, bc) {
					used[j] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func flattenUnion[V Symbol](parts []REG[V]) []REG[V] {
	var out []REG[V]
	for _, p := range parts {
		if p.k == kindUnion {
			out = append(out, flattenUnion(p.children)...)
		} else {
			out = append(out, p)
		}
	}
	return out
}

func flattenConcat[V Symbol](parts []REG[V]) []REG[V] {
	var out []REG[V]
	for _, p := range parts {
		if p.k == kindConcat {
			out = append(out, flattenConcat(p.children)...)
		} else {
			out = append(out, p)
		}
	}
	return out
}

func dedupe[V Symbol](parts []REG[V]) []REG[V] {
	var out []REG[V]
	for _, p := range parts {
		dup := false
		for _, o := range out {
			if equalReg(p, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func simplifyUnion[V Symbol](r REG[V]) REG[V] {
	simplified := make([]REG[V], len(r.children))
	for i, c := range r.children {
		simplified[i] = c.Simplify()
	}
	flat := flattenUnion(simplified)

	var kept []REG[V]
	hasEpsilon := false
	hasZeroLowerRepeat := false
	for _, c := range flat {
		if c.k == kindEmpty {
			continue
		}
		if c.k == kindEpsilon {
			hasEpsilon = true
			continue
		}
		if c.k == kindRepeat && c.min == 0 {
			hasZeroLowerRepeat = true
		}
		kept = append(kept, c)
	}

	if hasEpsilon && !hasZeroLowerRepeat {
		kept = append(kept, bare(r.alphabet, kindEpsilon))
	}

	kept = dedupe(kept)

	if len(kept) == 0 {
		return bare(r.alphabet, kindEmpty)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	if len(kept) == 2 {
		var eps, other *REG[V]
		for i := range kept {
			if kept[i].k == kindEpsilon {
				eps = &kept[i]
			} else {
				other = &kept[i]
			}
		}
		if eps != nil && other != nil {
			return Repeat(*other, 0, 1)
		}
	}

	if factored, ok := leftFactor(r.alphabet, kept); ok {
		return factored.Simplify()
	}

	out := bare(r.alphabet, kindUnion)
	out.children = kept
	return out
}

// leftFactor checks whether every child shares a common leading
// sub-expression and, if so, rewrites Union(p.x1, p.x2, ...) as
// Concat(p, Union(x1, x2, ...)).
func leftFactor[V Symbol](alphabet []V, parts []REG[V]) (REG[V], bool) {
	if len(parts) < 2 {
		return REG[V]{}, false
	}
	head := func(p REG[V]) (REG[V], []REG[V]) {
		if p.k == kindConcat && len(p.children) > 0 {
			return p.children[0], p.children[1:]
		}
		return p, nil
	}

	firstHead, _ := head(parts[0])
	tails := make([][]REG[V], len(parts))
	for i, p := range parts {
		h, t := head(p)
		if !equalReg(h, firstHead) {
			return REG[V]{}, false
		}
		tails[i] = t
	}

	tailNodes := make([]REG[V], len(tails))
	for i, t := range tails {
		if len(t) == 0 {
			tailNodes[i] = bare(alphabet, kindEpsilon)
		} else {
			tailNodes[i] = Concat(t...)
		}
	}

	return Concat(firstHead, Union(tailNodes...)), true
}

func simplifyConcat[V Symbol](r REG[V]) REG[V] {
	simplified := make([]REG[V], len(r.children))
	for i, c := range r.children {
		simplified[i] = c.Simplify()
	}
	flat := flattenConcat(simplified)

	var kept []REG[V]
	for _, c := range flat {
		if c.k == kindEmpty {
			return bare(r.alphabet, kindEmpty)
		}
		if c.k == kindEpsilon {
			continue
		}
		kept = append(kept, c)
	}

	if len(kept) == 0 {
		return bare(r.alphabet, kindEpsilon)
	}
	if len(kept) == 1 {
		return kept[0]
	}

	out := bare(r.alphabet, kindConcat)
	out.children = kept
	return out
}

func simplifyRepeat[V Symbol](r REG[V]) REG[V] {
	x := r.repeated.Simplify()
	lo, hi := r.min, r.max

	if hi >= 0 && hi < lo {
		return bare(r.alphabet, kindEmpty)
	}
	if x.k == kindEpsilon {
		return bare(r.alphabet, kindEpsilon)
	}
	if lo == 1 && hi == 1 {
		return x
	}
	if x.k == kindEmpty {
		if lo == 0 {
			return bare(r.alphabet, kindEpsilon)
		}
		return bare(r.alphabet, kindEmpty)
	}
	// Repeat(Repeat(y, 0, inf), _, _) collapses: y** == y*.
	if x.k == kindRepeat && x.min == 0 && x.max < 0 {
		return Repeat(*x.repeated, 0, -1)
	}
	// Repeat(Repeat(y, 0 or 1, 0 or 1), 0, inf) == y*.
	if lo == 0 && hi < 0 && x.k == kindRepeat && x.min <= 1 && x.max >= 0 && x.max <= 1 {
		return Repeat(*x.repeated, 0, -1)
	}
	if x.k == kindUnion {
		if lo == 0 && hi == 1 {
			withoutEps, hadEps := removeEpsilonChild(x)
			if hadEps {
				hasZeroLower := false
				for _, c := range withoutEps.children {
					if c.k == kindRepeat && c.min == 0 {
						hasZeroLower = true
					}
				}
				if !hasZeroLower {
					withoutEps.children = append(withoutEps.children, bare(r.alphabet, kindEpsilon))
				}
				return Repeat(withoutEps.Simplify(), lo, hi)
			}
		}
		if lo == 0 {
			withoutEps, hadEps := removeEpsilonChild(x)
			if hadEps {
				switch len(withoutEps.children) {
				case 0:
					return bare(r.alphabet, kindEpsilon)
				case 1:
					return Repeat(withoutEps.children[0], 0, hi)
				default:
					return Repeat(withoutEps, 0, hi)
				}
			}
		}
	}

	out := bare(r.alphabet, kindRepeat)
	c := x
	out.repeated = &c
	out.min, out.max = lo, hi
	return out
}

func removeEpsilonChild[V Symbol](u REG[V]) (REG[V], bool) {
	var kept []REG[V]
	found := false
	for _, c := range u.children {
		if c.k == kindEpsilon {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	out := u
	out.children = kept
	return out, found
}
