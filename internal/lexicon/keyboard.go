package lexicon

import (
	"math"
	"unicode"
)

var keyboardRows = []string{
	"ёйцукенгшщзхъ",
	"фывапролджэ",
	"ячсмитьбю",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range keyboardRows {
		c := 0
		for _, ch := range row {
			m[ch] = [2]int{r, c}
			c++
		}
	}
	return m
}()

// Частые «фонетические» замены дешевле клавиатурных
var specialSubs = map[[2]rune]float64{
	{'ё', 'е'}: 0.2, {'е', 'ё'}: 0.2,
	{'й', 'и'}: 0.3, {'и', 'й'}: 0.3,
	{'ь', 'ъ'}: 0.4, {'ъ', 'ь'}: 0.4,
	{'ц', 'й'}: 0.4, {'й', 'ц'}: 0.4,
}

func keyDistance(a, b rune) float64 {
	pa, oka := keyPos[unicode.ToLower(a)]
	pb, okb := keyPos[unicode.ToLower(b)]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// keyboardMetric is a Damerau-Levenshtein distance whose substitution cost
// grows with the distance between keys on the ЙЦУКЕН layout.
type keyboardMetric struct {
	transpose float64
	insDel    float64
	nearSub   float64
}

func (k keyboardMetric) substitutionCost(a, b rune) float64 {
	a, b = unicode.ToLower(a), unicode.ToLower(b)
	if v, ok := specialSubs[[2]rune{a, b}]; ok {
		return v
	}
	d := keyDistance(a, b)
	if d <= 1.0 {
		return k.nearSub
	} else if d <= 1.5 {
		return 0.8
	} else if d <= 2.2 {
		return 1.2
	}
	return 1.8
}

// Быстрая проверка «ровно одна перестановка соседних букв»
func isOneAdjacentSwap(ra, rb []rune) bool {
	if len(ra) != len(rb) || len(ra) < 2 {
		return false
	}
	diff := -1
	for i := 0; i < len(ra); i++ {
		if ra[i] != rb[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(ra) {
		return false
	}
	if ra[diff] == rb[diff+1] && ra[diff+1] == rb[diff] {
		for j := diff + 2; j < len(ra); j++ {
			if ra[j] != rb[j] {
				return false
			}
		}
		return true
	}
	return false
}

// distance is the weighted edit cost of turning a into b.
func (k keyboardMetric) distance(ra, rb []rune) float64 {
	if isOneAdjacentSwap(ra, rb) {
		return k.transpose
	}
	la, lb := len(ra), len(rb)
	if la == 0 {
		return float64(lb) * k.insDel
	}
	if lb == 0 {
		return float64(la) * k.insDel
	}
	// три скользящие строки DP: транспозиции нужна строка i-2
	prev2 := make([]float64, lb+1)
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 1; j <= lb; j++ {
		prev[j] = float64(j) * k.insDel
	}
	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * k.insDel
		for j := 1; j <= lb; j++ {
			var sub float64
			if ra[i-1] != rb[j-1] {
				sub = k.substitutionCost(ra[i-1], rb[j-1])
			}
			best := min(prev[j]+k.insDel, curr[j-1]+k.insDel, prev[j-1]+sub)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				best = min(best, prev2[j-2]+k.transpose)
			}
			curr[j] = best
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

// similarity normalizes the weighted distance by the longer word.
func (k keyboardMetric) similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	n := max(len(ra), len(rb))
	if n == 0 {
		return 1
	}
	s := 1 - k.distance(ra, rb)/float64(n)
	return math.Max(0, math.Min(1, s))
}
