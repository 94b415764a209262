package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Sides Количество граней кубика
const Sides = 6

// Roller - бросает пару шестигранных кубиков. Безопасен для конкурентного использования
type Roller struct {
	mtx    sync.Mutex
	random *rand.Rand
}

// New - создает Roller с заданным сидом. Сид 0 заменяется случайным
func New(seed int64) (*Roller, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &Roller{random: rand.New(rand.NewSource(seed))}, nil
}

// Roll - бросок двух кубиков, каждый равномерно от 1 до 6
func (r *Roller) Roll() (int, int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.random.Intn(Sides) + 1, r.random.Intn(Sides) + 1
}

// NewSeed - сид из crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
