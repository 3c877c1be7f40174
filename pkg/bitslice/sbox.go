package bitslice

// s0 through s7 each realise one classical DES S-box as a fixed network of
// AND/XOR/NOT gates operating on 64 lanes at once. a1 is the S-box's
// highest-order input bit (selects the table row's high bit), a6 its
// lowest (selects the table row's low bit), and a2..a5 select the column;
// o1 is the highest-order
// output bit. The gate networks were derived mechanically from the
// classical S-box truth tables via an algebraic-normal-form (XOR-of-
// products) expansion with shared-subexpression caching across a box's
// four output bits, and checked against the truth tables exhaustively
// before being transcribed here (see DESIGN.md, OQ3).

func s0(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g03 := a5 & a6
	g05 := a4 & a6
	g06 := a4 & a5
	g09 := a3 & a6
	g10 := a3 & a5
	g12 := a3 & a4
	g17 := a2 & a6
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g11 := g10 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g21 := g20 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g26 := g24 & a5
	g28 := g24 & a4
	g35 := g34 & a6
	g37 := g36 & a6
	g38 := g36 & a5
	g42 := g40 & a5
	g44 := g40 & a4
	g49 := g48 & a6
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g27 := g26 & a6
	g29 := g28 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g51 := g50 & a6
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g47 := g46 & a6
	g55 := g54 & a6
	g59 := g58 & a6
	g61 := g60 & a6
	o1 := ^(a6 ^ a5 ^ g07 ^ a3 ^ g12 ^ g13 ^ g14 ^ a2 ^ g24 ^ g28 ^ a1 ^ g34 ^ g36 ^ g37 ^ g42 ^ g44 ^ g45 ^ g46 ^ g51 ^ g52 ^ g53 ^ g54 ^ g56 ^ g59 ^ g60 ^ g61)
	o2 := ^(a6 ^ g03 ^ g05 ^ g06 ^ a3 ^ g10 ^ g11 ^ g13 ^ g15 ^ a2 ^ g17 ^ g20 ^ g21 ^ g22 ^ g25 ^ g33 ^ g34 ^ g38 ^ g40 ^ g43 ^ g44 ^ g47 ^ g48 ^ g49 ^ g50 ^ g55 ^ g56 ^ g57 ^ g58 ^ g59 ^ g60 ^ g61)
	o3 := ^(a6 ^ a5 ^ a4 ^ g06 ^ g07 ^ g09 ^ g10 ^ g12 ^ g13 ^ g17 ^ g18 ^ g20 ^ g21 ^ g23 ^ g24 ^ g25 ^ g26 ^ g28 ^ g29 ^ a1 ^ g34 ^ g35 ^ g44 ^ g47 ^ g48 ^ g49 ^ g51 ^ g52 ^ g53 ^ g54 ^ g55 ^ g56 ^ g57 ^ g58 ^ g59 ^ g60 ^ g61)
	o4 := g03 ^ a4 ^ g10 ^ a2 ^ g17 ^ g18 ^ g21 ^ g22 ^ g25 ^ g27 ^ g33 ^ g34 ^ g35 ^ g36 ^ g37 ^ g38 ^ g40 ^ g42 ^ g44 ^ g45 ^ g46 ^ g47 ^ g50 ^ g51 ^ g54 ^ g56 ^ g59 ^ g60 ^ g61
	return o1, o2, o3, o4
}

func s1(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g06 := a4 & a5
	g09 := a3 & a6
	g10 := a3 & a5
	g12 := a3 & a4
	g17 := a2 & a6
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g19 := g18 & a6
	g21 := g20 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g26 := g24 & a5
	g35 := g34 & a6
	g38 := g36 & a5
	g41 := g40 & a6
	g42 := g40 & a5
	g44 := g40 & a4
	g49 := g48 & a6
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g27 := g26 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g51 := g50 & a6
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g55 := g54 & a6
	g59 := g58 & a6
	o1 := ^(a6 ^ a5 ^ g06 ^ a3 ^ g17 ^ g20 ^ g22 ^ g24 ^ g25 ^ a1 ^ g35 ^ g38 ^ g39 ^ g43 ^ g49 ^ g51 ^ g54 ^ g55 ^ g56 ^ g57)
	o2 := ^(a6 ^ a5 ^ a4 ^ g07 ^ g09 ^ g15 ^ a2 ^ g20 ^ g21 ^ g24 ^ a1 ^ g54 ^ g55 ^ g58 ^ g59)
	o3 := ^(a5 ^ a4 ^ g10 ^ g12 ^ g13 ^ g14 ^ a2 ^ g19 ^ g21 ^ g23 ^ g25 ^ a1 ^ g35 ^ g38 ^ g40 ^ g42 ^ g44 ^ g45 ^ g46 ^ g48 ^ g49 ^ g50 ^ g52 ^ g53 ^ g55 ^ g56 ^ g58 ^ g59 ^ g60)
	o4 := ^(a4 ^ g07 ^ a3 ^ g09 ^ g10 ^ g17 ^ g22 ^ g23 ^ g26 ^ g27 ^ a1 ^ g33 ^ g35 ^ g39 ^ g40 ^ g41 ^ g42 ^ g43 ^ g48 ^ g50 ^ g51 ^ g53 ^ g57 ^ g59)
	return o1, o2, o3, o4
}

func s2(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g05 := a4 & a6
	g06 := a4 & a5
	g09 := a3 & a6
	g10 := a3 & a5
	g12 := a3 & a4
	g17 := a2 & a6
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g11 := g10 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g19 := g18 & a6
	g21 := g20 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g26 := g24 & a5
	g28 := g24 & a4
	g37 := g36 & a6
	g38 := g36 & a5
	g42 := g40 & a5
	g44 := g40 & a4
	g49 := g48 & a6
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g27 := g26 & a6
	g29 := g28 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g51 := g50 & a6
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g47 := g46 & a6
	g55 := g54 & a6
	g59 := g58 & a6
	g61 := g60 & a6
	o1 := ^(a5 ^ g05 ^ g06 ^ g07 ^ a3 ^ g10 ^ g12 ^ g15 ^ a2 ^ g20 ^ g22 ^ g23 ^ g26 ^ g27 ^ g28 ^ g33 ^ g36 ^ g37 ^ g38 ^ g39 ^ g40 ^ g43 ^ g44 ^ g47 ^ g48 ^ g52 ^ g54 ^ g55 ^ g56 ^ g60)
	o2 := a6 ^ g05 ^ g06 ^ g07 ^ a3 ^ g10 ^ g17 ^ g18 ^ g19 ^ g20 ^ g21 ^ g24 ^ g25 ^ g26 ^ g27 ^ g28 ^ a1 ^ g39 ^ g47 ^ g48 ^ g49 ^ g50 ^ g51 ^ g52 ^ g56 ^ g57 ^ g58 ^ g59 ^ g60
	o3 := ^(a6 ^ a5 ^ a4 ^ g05 ^ g07 ^ g09 ^ g10 ^ g11 ^ g12 ^ g13 ^ g14 ^ g15 ^ a2 ^ g18 ^ g19 ^ g20 ^ g22 ^ g24 ^ g25 ^ g28 ^ g29 ^ a1 ^ g33 ^ g36 ^ g37 ^ g38 ^ g39 ^ g42 ^ g43 ^ g45 ^ g47 ^ g49 ^ g50 ^ g51 ^ g52 ^ g53 ^ g55 ^ g60 ^ g61)
	o4 := a6 ^ a4 ^ g06 ^ g10 ^ a2 ^ a1 ^ g33 ^ g34 ^ g37 ^ g38 ^ g40 ^ g42 ^ g48 ^ g49 ^ g50 ^ g51 ^ g56 ^ g57 ^ g58 ^ g61
	return o1, o2, o3, o4
}

func s3(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g03 := a5 & a6
	g05 := a4 & a6
	g06 := a4 & a5
	g09 := a3 & a6
	g10 := a3 & a5
	g12 := a3 & a4
	g17 := a2 & a6
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g14 := g12 & a5
	g19 := g18 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g26 := g24 & a5
	g28 := g24 & a4
	g35 := g34 & a6
	g37 := g36 & a6
	g38 := g36 & a5
	g41 := g40 & a6
	g42 := g40 & a5
	g44 := g40 & a4
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g27 := g26 & a6
	g29 := g28 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g51 := g50 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g47 := g46 & a6
	g59 := g58 & a6
	o1 := a6 ^ a5 ^ g03 ^ a4 ^ g05 ^ g07 ^ g09 ^ g10 ^ g17 ^ g18 ^ g19 ^ g22 ^ g23 ^ g24 ^ g26 ^ g27 ^ g29 ^ a1 ^ g35 ^ g36 ^ g37 ^ g43 ^ g44 ^ g45 ^ g46 ^ g47 ^ g50 ^ g51 ^ g52 ^ g54 ^ g58 ^ g59 ^ g60
	o2 := ^(g03 ^ g05 ^ g06 ^ g07 ^ a3 ^ g09 ^ g10 ^ a2 ^ g17 ^ g19 ^ g23 ^ g24 ^ g27 ^ g28 ^ g29 ^ a1 ^ g34 ^ g35 ^ g37 ^ g42 ^ g43 ^ g45 ^ g47 ^ g51 ^ g52 ^ g54 ^ g59 ^ g60)
	o3 := ^(a6 ^ a5 ^ g03 ^ g05 ^ g06 ^ a3 ^ g14 ^ g15 ^ a2 ^ g17 ^ g19 ^ g23 ^ g25 ^ g28 ^ g29 ^ g33 ^ g34 ^ g35 ^ g36 ^ g37 ^ g38 ^ g39 ^ g41 ^ g42 ^ g46 ^ g47 ^ g48 ^ g50 ^ g52 ^ g54 ^ g57 ^ g58 ^ g59 ^ g60)
	o4 := ^(g03 ^ a4 ^ g05 ^ g06 ^ a3 ^ g15 ^ g17 ^ g18 ^ g19 ^ g22 ^ g23 ^ g24 ^ g25 ^ g29 ^ a1 ^ g33 ^ g35 ^ g37 ^ g39 ^ g40 ^ g41 ^ g42 ^ g47 ^ g48 ^ g50 ^ g52 ^ g54 ^ g56 ^ g57 ^ g59 ^ g60)
	return o1, o2, o3, o4
}

func s4(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g03 := a5 & a6
	g05 := a4 & a6
	g06 := a4 & a5
	g09 := a3 & a6
	g10 := a3 & a5
	g12 := a3 & a4
	g17 := a2 & a6
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g11 := g10 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g19 := g18 & a6
	g21 := g20 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g26 := g24 & a5
	g28 := g24 & a4
	g35 := g34 & a6
	g37 := g36 & a6
	g38 := g36 & a5
	g41 := g40 & a6
	g42 := g40 & a5
	g44 := g40 & a4
	g49 := g48 & a6
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g27 := g26 & a6
	g29 := g28 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g51 := g50 & a6
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g47 := g46 & a6
	g55 := g54 & a6
	g59 := g58 & a6
	g61 := g60 & a6
	o1 := a6 ^ a5 ^ g03 ^ g05 ^ g06 ^ g09 ^ g12 ^ g13 ^ g14 ^ g15 ^ a2 ^ g20 ^ g21 ^ g22 ^ g25 ^ g27 ^ g34 ^ g35 ^ g37 ^ g40 ^ g41 ^ g43 ^ g46 ^ g51 ^ g52 ^ g53 ^ g54 ^ g55 ^ g57 ^ g60
	o2 := a6 ^ a5 ^ a4 ^ a3 ^ g09 ^ g11 ^ g13 ^ g15 ^ g20 ^ g25 ^ g29 ^ a1 ^ g35 ^ g38 ^ g39 ^ g46 ^ g49 ^ g53 ^ g56 ^ g57 ^ g60 ^ g61
	o3 := ^(a5 ^ g03 ^ a4 ^ g05 ^ g06 ^ g09 ^ g10 ^ g12 ^ g13 ^ g14 ^ g15 ^ a2 ^ g18 ^ g19 ^ g21 ^ g22 ^ g26 ^ g27 ^ g28 ^ g29 ^ a1 ^ g33 ^ g35 ^ g36 ^ g38 ^ g40 ^ g41 ^ g42 ^ g44 ^ g45 ^ g46 ^ g47 ^ g49 ^ g50 ^ g52 ^ g55 ^ g56 ^ g59 ^ g60 ^ g61)
	o4 := g03 ^ g06 ^ a3 ^ g09 ^ g10 ^ g11 ^ g13 ^ g14 ^ g15 ^ g17 ^ g18 ^ g19 ^ g20 ^ g21 ^ g23 ^ g26 ^ g33 ^ g36 ^ g38 ^ g40 ^ g41 ^ g45 ^ g46 ^ g47 ^ g48 ^ g49 ^ g50 ^ g51 ^ g52 ^ g54 ^ g56 ^ g57 ^ g58 ^ g59 ^ g60
	return o1, o2, o3, o4
}

func s5(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g03 := a5 & a6
	g05 := a4 & a6
	g06 := a4 & a5
	g09 := a3 & a6
	g10 := a3 & a5
	g12 := a3 & a4
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g11 := g10 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g19 := g18 & a6
	g22 := g20 & a5
	g26 := g24 & a5
	g28 := g24 & a4
	g35 := g34 & a6
	g37 := g36 & a6
	g38 := g36 & a5
	g41 := g40 & a6
	g42 := g40 & a5
	g44 := g40 & a4
	g49 := g48 & a6
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g29 := g28 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g47 := g46 & a6
	g55 := g54 & a6
	g59 := g58 & a6
	g61 := g60 & a6
	o1 := ^(a5 ^ g03 ^ g05 ^ g06 ^ g07 ^ g09 ^ g11 ^ g12 ^ g13 ^ g14 ^ g15 ^ a2 ^ g24 ^ g29 ^ g33 ^ g34 ^ g35 ^ g37 ^ g39 ^ g40 ^ g41 ^ g42 ^ g43 ^ g53 ^ g55 ^ g57 ^ g59 ^ g61)
	o2 := ^(a6 ^ a5 ^ a4 ^ a3 ^ g10 ^ g14 ^ a2 ^ g20 ^ g23 ^ a1 ^ g38 ^ g39 ^ g40 ^ g41 ^ g43 ^ g46 ^ g54 ^ g56 ^ g57 ^ g58 ^ g59 ^ g61)
	o3 := a6 ^ a4 ^ g07 ^ g10 ^ g19 ^ g22 ^ g24 ^ g26 ^ g33 ^ g34 ^ g39 ^ g40 ^ g41 ^ g42 ^ g43 ^ g48 ^ g54 ^ g55 ^ g56 ^ g59
	o4 := a5 ^ g07 ^ a3 ^ g12 ^ g13 ^ g14 ^ g15 ^ g20 ^ g23 ^ g24 ^ g28 ^ g29 ^ a1 ^ g33 ^ g38 ^ g39 ^ g42 ^ g44 ^ g45 ^ g46 ^ g47 ^ g49 ^ g53 ^ g55 ^ g57
	return o1, o2, o3, o4
}

func s6(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g03 := a5 & a6
	g06 := a4 & a5
	g09 := a3 & a6
	g12 := a3 & a4
	g17 := a2 & a6
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g21 := g20 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g28 := g24 & a4
	g35 := g34 & a6
	g37 := g36 & a6
	g38 := g36 & a5
	g41 := g40 & a6
	g42 := g40 & a5
	g44 := g40 & a4
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g29 := g28 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g46 := g44 & a5
	g51 := g50 & a6
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g47 := g46 & a6
	g55 := g54 & a6
	g59 := g58 & a6
	g61 := g60 & a6
	o1 := a6 ^ a5 ^ a3 ^ g14 ^ g15 ^ g20 ^ g24 ^ g25 ^ g28 ^ g29 ^ g33 ^ g34 ^ g35 ^ g36 ^ g39 ^ g41 ^ g42 ^ g46 ^ g47 ^ g48 ^ g52 ^ g54 ^ g56 ^ g57 ^ g58 ^ g60 ^ g61
	o2 := ^(a5 ^ a4 ^ g15 ^ a2 ^ g17 ^ g20 ^ g23 ^ g24 ^ a1 ^ g33 ^ g36 ^ g40 ^ g46 ^ g48 ^ g53 ^ g55 ^ g57 ^ g60)
	o3 := a5 ^ g03 ^ a4 ^ g06 ^ g07 ^ a3 ^ g09 ^ g13 ^ g15 ^ a2 ^ g22 ^ g23 ^ g29 ^ g33 ^ g34 ^ g35 ^ g40 ^ g42 ^ g43 ^ g45 ^ g47 ^ g52 ^ g54 ^ g56 ^ g57 ^ g58 ^ g59 ^ g61
	o4 := a6 ^ a5 ^ g06 ^ a3 ^ g12 ^ g14 ^ a2 ^ g21 ^ g23 ^ g24 ^ a1 ^ g37 ^ g39 ^ g45 ^ g47 ^ g51 ^ g53 ^ g57
	return o1, o2, o3, o4
}

func s7(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64) {
	g03 := a5 & a6
	g05 := a4 & a6
	g06 := a4 & a5
	g10 := a3 & a5
	g12 := a3 & a4
	g17 := a2 & a6
	g18 := a2 & a5
	g20 := a2 & a4
	g24 := a2 & a3
	g33 := a1 & a6
	g34 := a1 & a5
	g36 := a1 & a4
	g40 := a1 & a3
	g48 := a1 & a2
	g07 := g06 & a6
	g11 := g10 & a6
	g13 := g12 & a6
	g14 := g12 & a5
	g19 := g18 & a6
	g21 := g20 & a6
	g22 := g20 & a5
	g25 := g24 & a6
	g28 := g24 & a4
	g35 := g34 & a6
	g37 := g36 & a6
	g38 := g36 & a5
	g41 := g40 & a6
	g42 := g40 & a5
	g44 := g40 & a4
	g50 := g48 & a5
	g52 := g48 & a4
	g56 := g48 & a3
	g15 := g14 & a6
	g23 := g22 & a6
	g29 := g28 & a6
	g39 := g38 & a6
	g43 := g42 & a6
	g45 := g44 & a6
	g51 := g50 & a6
	g53 := g52 & a6
	g54 := g52 & a5
	g57 := g56 & a6
	g58 := g56 & a5
	g60 := g56 & a4
	g55 := g54 & a6
	g59 := g58 & a6
	g61 := g60 & a6
	o1 := ^(a6 ^ a5 ^ g05 ^ g07 ^ a3 ^ g12 ^ g13 ^ g17 ^ g18 ^ g19 ^ g20 ^ g21 ^ g22 ^ g28 ^ g29 ^ a1 ^ g33 ^ g35 ^ g38 ^ g39 ^ g41 ^ g42 ^ g44 ^ g45 ^ g53 ^ g55 ^ g57 ^ g59 ^ g60 ^ g61)
	o2 := ^(a6 ^ a5 ^ a4 ^ g10 ^ a2 ^ g18 ^ g20 ^ g22 ^ g24 ^ g35 ^ g36 ^ g37 ^ g40 ^ g42 ^ g43 ^ g44 ^ g45 ^ g50 ^ g52 ^ g54 ^ g56 ^ g60 ^ g61)
	o3 := a5 ^ g06 ^ a3 ^ g10 ^ a2 ^ g17 ^ g19 ^ g21 ^ g23 ^ g25 ^ g29 ^ a1 ^ g34 ^ g35 ^ g36 ^ g37 ^ g38 ^ g39 ^ g42 ^ g50 ^ g55 ^ g58 ^ g59
	o4 := ^(a5 ^ g03 ^ a4 ^ g05 ^ g06 ^ a3 ^ g11 ^ g13 ^ g15 ^ a2 ^ g19 ^ g22 ^ g25 ^ g33 ^ g34 ^ g39 ^ g40 ^ g42 ^ g43 ^ g45 ^ g51 ^ g52 ^ g53 ^ g54 ^ g56 ^ g58 ^ g59 ^ g61)
	return o1, o2, o3, o4
}

// sboxFn is one of s0..s7.
type sboxFn func(a1, a2, a3, a4, a5, a6 uint64) (uint64, uint64, uint64, uint64)

// sboxes indexes the eight DES S-boxes in order.
var sboxes = [8]sboxFn{s0, s1, s2, s3, s4, s5, s6, s7}
