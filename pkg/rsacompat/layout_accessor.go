package rsacompat

type accessorLayout struct{}

func (accessorLayout) name() string { return "accessor" }

func (accessorLayout) bits(key *Key) int {
	return key.Bits()
}

// importKey hands the components over in three Set0 calls. Components key
// already holds are passed as nil, which the setters read as "keep".
func (accessorLayout) importKey(key *Key, c Components) error {
	heldN, heldE, heldD := key.Get0Key()
	n, e, d := unlessHeld(c.N, heldN), unlessHeld(c.E, heldE), unlessHeld(c.D, heldD)

	stages := []transferStage{{
		name:   "RSA_set0_key",
		commit: func() error { return key.Set0Key(n, e, d) },
		release: func() {
			n.Free()
			e.Free()
			d.ClearFree()
		},
	}}
	if c.IsPrivate() {
		heldP, heldQ := key.Get0Factors()
		heldDmp1, heldDmq1, heldIqmp := key.Get0CRTParams()
		p, q := unlessHeld(c.P, heldP), unlessHeld(c.Q, heldQ)
		dmp1, dmq1, iqmp := unlessHeld(c.Dmp1, heldDmp1), unlessHeld(c.Dmq1, heldDmq1), unlessHeld(c.Iqmp, heldIqmp)

		stages = append(stages,
			transferStage{
				name:   "RSA_set0_factors",
				commit: func() error { return key.Set0Factors(p, q) },
				release: func() {
					p.ClearFree()
					q.ClearFree()
				},
			},
			transferStage{
				name:   "RSA_set0_crt_params",
				commit: func() error { return key.Set0CRTParams(dmp1, dmq1, iqmp) },
				release: func() {
					dmp1.ClearFree()
					dmq1.ClearFree()
					iqmp.ClearFree()
				},
			},
		)
	}
	return commitStages(stages)
}

func (accessorLayout) exportKey(key *Key, private bool) Components {
	var c Components
	if !private {
		c.N, c.E, _ = key.Get0Key()
		return c
	}
	c.N, c.E, c.D = key.Get0Key()
	c.P, c.Q = key.Get0Factors()
	c.Dmp1, c.Dmq1, c.Iqmp = key.Get0CRTParams()
	return c
}
