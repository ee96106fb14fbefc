package service

import (
	"fmt"
	"strconv"
	"time"

	"phone-loan/domain"
)

// ParseIdentity validates a 13-digit national identity number and derives
// the birth date and gender it encodes. It never fails: malformed input
// yields an Identity with Valid set to false.
//
// The two-digit birth year is placed in the 2000s when it is below today's
// two-digit year and in the 1900s otherwise, so the result depends on today.
func ParseIdentity(raw string, today time.Time) domain.Identity {
	id := domain.Identity{Number: raw}
	if !isIdentityFormat(raw) {
		return id
	}

	id.ChecksumValid = luhnValid(raw)
	if birth, ok := birthDateFromIdentity(raw, today); ok {
		id.BirthDate = &birth
		id.Gender = genderFromIdentity(raw)
	}
	id.Valid = id.BirthDate != nil && id.ChecksumValid
	return id
}

func isIdentityFormat(raw string) bool {
	if len(raw) != IdentityNumberLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

func birthDateFromIdentity(raw string, today time.Time) (time.Time, bool) {
	yy, _ := strconv.Atoi(raw[0:2])
	month, _ := strconv.Atoi(raw[2:4])
	day, _ := strconv.Atoi(raw[4:6])

	century := 1900
	if yy < today.Year()%100 {
		century = 2000
	}
	year := century + yy

	// time.Date normalises out-of-range values (Feb 30 -> Mar 2), so a real
	// date is one that formats back to the digits it was built from.
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Format("2006-01-02") != fmt.Sprintf("%04d-%s-%s", year, raw[2:4], raw[4:6]) {
		return time.Time{}, false
	}
	return birth, true
}

func genderFromIdentity(raw string) domain.Gender {
	sequence, _ := strconv.Atoi(raw[6:10])
	if sequence >= 5000 {
		return domain.GenderMale
	}
	return domain.GenderFemale
}

// luhnValid applies the mod-10 check. Digits whose index has the same
// parity as the string length are doubled.
func luhnValid(number string) bool {
	parity := len(number) % 2
	sum := 0
	for i := 0; i < len(number); i++ {
		d := int(number[i] - '0')
		if i%2 == parity {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}
