package banks_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meita/saudi-banks/src/banks"
)

func TestAllReturnsEveryBank(t *testing.T) {
	all := banks.All()
	require.NotEmpty(t, all)

	seen := make(map[string]struct{}, len(all))
	for _, bank := range all {
		assert.Len(t, bank.Identifier(), 2, "identifier %q", bank.Identifier())
		assert.NotEmpty(t, bank.EnglishName())
		assert.NotEmpty(t, bank.ArabicName())
		assert.NotEmpty(t, bank.ShortCode())
		seen[bank.Identifier()] = struct{}{}
	}

	assert.Len(t, all, len(seen), "iban identifiers must be unique")
	assert.Len(t, all, 22)
}

func TestShortCodesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, bank := range banks.All() {
		prev, dup := seen[bank.ShortCode()]
		assert.False(t, dup, "short code %s used by %s and %s", bank.ShortCode(), prev, bank.Identifier())
		seen[bank.ShortCode()] = bank.Identifier()
	}
}

func TestAllReturnsFreshCopy(t *testing.T) {
	first := banks.All()
	first[0] = banks.NewBank("99", "Mutated", "متغير", "MUT", true, nil)

	second := banks.All()
	assert.Equal(t, "05", second[0].Identifier())
	assert.Equal(t, "10", second[1].Identifier())
	assert.Len(t, second, 22)
}

func TestActiveExcludesLegacyEntries(t *testing.T) {
	active := banks.Active()
	for _, bank := range active {
		assert.True(t, bank.Active(), "bank %s", bank.Identifier())
		assert.NotContains(t, []string{"40", "50"}, bank.Identifier())
	}
	assert.Len(t, active, len(banks.All())-2)
}

func TestEveryBankResolvesToItself(t *testing.T) {
	for _, bank := range banks.All() {
		found, err := banks.FindByIdentifier(bank.Identifier())
		require.NoError(t, err)
		assert.True(t, found.Equal(bank), "identifier %s", bank.Identifier())
	}
}

func TestFindByIdentifierPadsAndTrims(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		short string
	}{
		{name: "single digit", input: "5", want: "05", short: "ALINMA"},
		{name: "surrounding whitespace", input: "  80\t", want: "80", short: "RAJHI"},
		{name: "padded single digit", input: " 5 ", want: "05", short: "ALINMA"},
		{name: "legacy identifier", input: "40", want: "40", short: "SAMBA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, err := banks.FindByIdentifier(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bank.Identifier())
			assert.Equal(t, tt.short, bank.ShortCode())
		})
	}
}

func TestFindByIdentifierNotFound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty pads to 00", input: "", want: "00"},
		{name: "whitespace only", input: "   ", want: "00"},
		{name: "unknown", input: "99", want: "99"},
		{name: "too long is not rejected early", input: "805", want: "805"},
		{name: "letters are not folded", input: "ab", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := banks.FindByIdentifier(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, banks.ErrNotFound)
			assert.NotErrorIs(t, err, banks.ErrMalformedIBAN)

			var nf *banks.NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.want, nf.Identifier)
		})
	}
}

func TestFindByIBANExtractsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		iban string
	}{
		{name: "canonical", iban: "SA0380000000608010167519"},
		{name: "lowercase", iban: "sa0380000000608010167519"},
		{name: "grouped with spaces", iban: "SA03 8000 0000 6080 1016 7519"},
		{name: "mixed case with spaces", iban: " sA03 8000 0000 6080 1016 7519 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, err := banks.FindByIBAN(tt.iban)
			require.NoError(t, err)
			assert.Equal(t, "80", bank.Identifier())
			assert.Equal(t, "RAJHI", bank.ShortCode())
		})
	}
}

func TestFindByIBANKeepsInvalidUTF8Bytes(t *testing.T) {
	bank, err := banks.FindByIBAN("sa038000000060801016751\xff")
	require.NoError(t, err)
	assert.Equal(t, "80", bank.Identifier())
}

func TestFindByIdentifierDoesNotTrimUnicodeSpace(t *testing.T) {
	_, err := banks.FindByIdentifier("\u00a05")
	assert.ErrorIs(t, err, banks.ErrNotFound)

	bank, err := banks.FindByIdentifier("5\x00")
	require.NoError(t, err)
	assert.Equal(t, "05", bank.Identifier())
}

func TestFindByIBANLegacyIdentifier(t *testing.T) {
	bank, err := banks.FindByIBAN("SA4450000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "ALAWAL", bank.ShortCode())
	assert.False(t, bank.Active())
}

func TestFindByIBANMalformed(t *testing.T) {
	tests := []struct {
		name string
		iban string
		want string
	}{
		{name: "empty", iban: "", want: ""},
		{name: "too short", iban: "SA038000000060801016751", want: "SA038000000060801016751"},
		{name: "too long", iban: "SA03800000006080101675190", want: "SA03800000006080101675190"},
		{name: "wrong country", iban: "AE070331234567890123456", want: "AE070331234567890123456"},
		{name: "wrong country with valid length", iban: "GB0380000000608010167519", want: "GB0380000000608010167519"},
		{name: "tab is not stripped", iban: "SA03\t80000000608010167519", want: "SA03\t80000000608010167519"},
		{name: "non-ascii letter is not folded", iban: "ſA0380000000608010167519", want: "ſA0380000000608010167519"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := banks.FindByIBAN(tt.iban)
			require.Error(t, err)
			assert.ErrorIs(t, err, banks.ErrMalformedIBAN)
			assert.NotErrorIs(t, err, banks.ErrNotFound)

			var me *banks.MalformedIBANError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.want, me.IBAN)
		})
	}
}

func TestFindByIBANUnknownIdentifierIsNotFound(t *testing.T) {
	_, err := banks.FindByIBAN("SA0399000000608010167519")
	require.Error(t, err)
	assert.ErrorIs(t, err, banks.ErrNotFound)
	assert.NotErrorIs(t, err, banks.ErrMalformedIBAN)

	var nf *banks.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "99", nf.Identifier)
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, bank := range banks.All() {
				found, err := banks.FindByIdentifier(bank.Identifier())
				assert.NoError(t, err)
				assert.True(t, found.Equal(bank))
			}
		}()
	}
	wg.Wait()
}
