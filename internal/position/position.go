// Package position генерирует ключи порядка (fractional index) для элементов списка.
//
// Ключ это строка над алфавитом a..z, сравниваемая побайтово. Символ 'a'
// играет роль нуля: сгенерированные ключи никогда не оканчиваются на 'a',
// поэтому между любыми двумя сгенерированными ключами всегда есть место.
package position

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	minDigit = 'a'
	maxDigit = 'z'
	base     = 26

	// Mid ключ, возвращаемый при отсутствии обеих границ
	Mid = "n"

	// interiorSlots количество односимвольных ключей b..y
	interiorSlots = 24
)

var (
	// ErrInvalidKey ключ содержит символ вне алфавита a..z
	ErrInvalidKey = errors.New("position: invalid key")
	// ErrInvalidBounds нижняя граница не меньше верхней
	ErrInvalidBounds = errors.New("position: before must be less than after")
	// ErrNoSpace between ключами нет ни одной строки (after == before + "a"...)
	ErrNoSpace = errors.New("position: no key between bounds")
)

// Between возвращает ключ строго между before и after.
// Пустая строка означает отсутствие границы; без обеих границ возвращается Mid.
func Between(before, after string) (string, error) {
	if err := validate(before); err != nil {
		return "", err
	}
	if err := validate(after); err != nil {
		return "", err
	}
	if after != "" {
		if before >= after {
			return "", fmt.Errorf("%w: %q >= %q", ErrInvalidBounds, before, after)
		}
		if rest, ok := strings.CutPrefix(after, before); ok && strings.Trim(rest, "a") == "" {
			return "", fmt.Errorf("%w: %q and %q", ErrNoSpace, before, after)
		}
	}
	return midpoint(before, after), nil
}

// Before возвращает ключ перед first
func Before(first string) (string, error) {
	return Between("", first)
}

// After возвращает ключ после last
func After(last string) (string, error) {
	return Between(last, "")
}

// Compare сравнивает элементы по позиции, при равенстве по id
func Compare(posA, idA, posB, idB string) int {
	if c := strings.Compare(posA, posB); c != 0 {
		return c
	}
	return strings.Compare(idA, idB)
}

// Valid сообщает, что ключ непустой и состоит только из символов a..z
func Valid(key string) bool {
	return key != "" && validate(key) == nil
}

// Initial возвращает count различных равномерно распределенных ключей.
//
// До 24 ключей это одиночные символы внутри b..y; крайние a и z
// остаются свободными для вставки перед первым и после последнего.
// Для большего количества интервал [b, z) делится как дробь по основанию 26
// на длине, достаточной для различия всех значений.
func Initial(count int) []string {
	if count <= 0 {
		return nil
	}

	keys := make([]string, count)

	if count <= interiorSlots {
		for i := range count {
			idx := 1 + (2*i+1)*interiorSlots/(2*count)
			keys[i] = string(rune(minDigit + idx))
		}
		return keys
	}

	// минимальная длина L: 24*26^(L-1) >= count+1
	unit := big.NewInt(1) // 26^(L-1)
	length := 1
	need := big.NewInt(int64(count) + 1)
	span := new(big.Int)
	for {
		span.Mul(unit, big.NewInt(interiorSlots))
		if span.Cmp(need) >= 0 {
			break
		}
		unit.Mul(unit, big.NewInt(base))
		length++
	}

	n := new(big.Int)
	for i := range count {
		// N_i = 26^(L-1) + floor((i+1) * span / (count+1))
		n.Mul(span, big.NewInt(int64(i)+1))
		n.Quo(n, need)
		n.Add(n, unit)
		keys[i] = encode(n, length)
	}

	return keys
}

// encode записывает n в length цифр по основанию 26 и отбрасывает хвостовые 'a'
func encode(n *big.Int, length int) string {
	digits := make([]byte, length)
	v := new(big.Int).Set(n)
	mod := new(big.Int)
	b := big.NewInt(base)
	for i := length - 1; i >= 0; i-- {
		v.QuoRem(v, b, mod)
		digits[i] = byte(minDigit + mod.Int64())
	}
	return strings.TrimRight(string(digits), "a")
}

func validate(key string) error {
	for i := 0; i < len(key); i++ {
		if key[i] < minDigit || key[i] > maxDigit {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// midpoint ищет ключ между lo и hi (hi == "" значит без верхней границы).
// Требует lo < hi и что hi не равен lo с хвостом из 'a'.
func midpoint(lo, hi string) string {
	if hi != "" {
		// общий префикс, lo дополняется нулями ('a')
		n := 0
		for n < len(hi) && digitAt(lo, n) == hi[n] {
			n++
		}
		if n > 0 {
			rest := ""
			if n < len(lo) {
				rest = lo[n:]
			}
			return hi[:n] + midpoint(rest, hi[n:])
		}
	}

	dl := 0
	if lo != "" {
		dl = int(lo[0] - minDigit)
	}
	dh := base
	if hi != "" {
		dh = int(hi[0] - minDigit)
	}

	if dh-dl > 1 {
		return string(rune(minDigit + (dl+dh+1)/2))
	}

	// соседние символы
	if len(hi) > 1 {
		return hi[:1]
	}
	rest := ""
	if len(lo) > 1 {
		rest = lo[1:]
	}
	return string(rune(minDigit+dl)) + midpoint(rest, "")
}

func digitAt(key string, i int) byte {
	if i < len(key) {
		return key[i]
	}
	return minDigit
}
