package banks

// All returns a copy of every registry entry in authored order.
func All() []Bank {
	out := make([]Bank, len(registry))
	copy(out, registry)
	return out
}

// Active returns the entries still issuing IBANs.
func Active() []Bank {
	out := make([]Bank, 0, len(registry))
	for _, bank := range registry {
		if bank.active {
			out = append(out, bank)
		}
	}

	return out
}

func FindByIdentifier(raw string) (Bank, error) {
	id := NormalizeIdentifier(raw)
	for _, bank := range registry {
		if bank.identifier == id {
			return bank, nil
		}
	}

	return Bank{}, &NotFoundError{Identifier: id}
}

// FindByIBAN resolves the issuing bank of a 24-character SA IBAN. Spaces and
// letter case are ignored. Unknown identifiers fail the same way as FindByIdentifier.
func FindByIBAN(raw string) (Bank, error) {
	id, err := IdentifierFromIBAN(raw)
	if err != nil {
		return Bank{}, err
	}

	return FindByIdentifier(id)
}
