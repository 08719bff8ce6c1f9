// Package rs implements systematic Reed-Solomon erasure coding over a
// finite field GF(2^p). A message is cut into k data shards, n-k parity
// shards are appended, and the original message can be rebuilt from any
// k of the n shards.
package rs

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/g2p/field"
)

var log = logging.Logger("rs")

// Config describes a Reed-Solomon code.
type Config struct {
	// DataShards is k, the number of message shards.
	DataShards int
	// ParityShards is n-k, the number of redundant shards.
	ParityShards int
	// ShardSize is the size of one shard in bytes. 8*ShardSize must be
	// a multiple of the field degree.
	ShardSize int
	// Field carries the shard arithmetic.
	Field field.Field
	// PrimitiveElement generates the evaluation points 1, α, α², …
	// Its multiplicative order must be at least DataShards+ParityShards
	// so the points stay distinct, which is what makes every k×k
	// submatrix of the code invertible.
	PrimitiveElement field.Element
}

// DefaultConfig returns a code over GF(2^8) with the AES modulus, using
// 3 as the primitive element.
func DefaultConfig() *Config {
	f := field.GF256()
	return &Config{
		DataShards:       4,
		ParityShards:     2,
		ShardSize:        1024,
		Field:            f,
		PrimitiveElement: f.Generator(),
	}
}

// Encoder encodes and reconstructs shards for one Config.
type Encoder struct {
	cfg             *Config
	bitsPerElement  int
	elementsPerRow  int
	generatorMatrix [][]field.Element
}

// New validates the configuration and precomputes the systematic
// generator matrix.
func New(cfg *Config) (*Encoder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.DataShards <= 0 {
		return nil, fmt.Errorf("rs: data shard count must be positive")
	}
	if cfg.ParityShards <= 0 {
		return nil, fmt.Errorf("rs: parity shard count must be positive")
	}
	if cfg.ShardSize <= 0 {
		return nil, fmt.Errorf("rs: shard size must be positive")
	}
	if cfg.Field == nil {
		return nil, fmt.Errorf("rs: field is required")
	}
	if cfg.PrimitiveElement == nil {
		return nil, fmt.Errorf("rs: primitive element is required")
	}
	total := uint64(cfg.DataShards + cfg.ParityShards)
	if total >= cfg.Field.Size() {
		return nil, fmt.Errorf("rs: %d shards do not fit in a field of size %d", total, cfg.Field.Size())
	}

	bits := int(cfg.Field.Degree())
	if (8*cfg.ShardSize)%bits != 0 {
		return nil, fmt.Errorf("rs: shard size %d bytes is not a whole number of %d-bit elements", cfg.ShardSize, bits)
	}

	e := &Encoder{
		cfg:            cfg,
		bitsPerElement: bits,
		elementsPerRow: 8 * cfg.ShardSize / bits,
	}
	e.generatorMatrix = e.buildGeneratorMatrix()
	log.Debugf("rs code ready: k=%d parity=%d over GF(2^%d)", cfg.DataShards, cfg.ParityShards, bits)
	return e, nil
}

// buildGeneratorMatrix returns the full systematic generator matrix
// G = [I | P]: a Vandermonde matrix over the evaluation points, with
// its top k×k block normalized to the identity. Encoding multiplies G
// by the data vector; any k rows of G remain invertible.
func (e *Encoder) buildGeneratorMatrix() [][]field.Element {
	k := e.cfg.DataShards
	n := k + e.cfg.ParityShards
	points := e.evaluationPoints(n)

	vandermonde := make([][]field.Element, n)
	for i := 0; i < n; i++ {
		vandermonde[i] = make([]field.Element, k)
		power := e.cfg.Field.One()
		for j := 0; j < k; j++ {
			vandermonde[i][j] = power
			power = power.Mul(points[i])
		}
	}

	top := make([][]field.Element, k)
	for i := range top {
		top[i] = vandermonde[i]
	}
	topInv, err := field.InvertMatrix(top, e.cfg.Field)
	if err != nil {
		// Distinct evaluation points make the top block a Vandermonde
		// matrix of full rank.
		panic(fmt.Sprintf("rs: generator matrix construction failed: %v", err))
	}
	return field.MatrixMultiply(vandermonde, topInv, e.cfg.Field)
}

// evaluationPoints returns 1, α, α², … for the configured primitive
// element α.
func (e *Encoder) evaluationPoints(n int) []field.Element {
	points := make([]field.Element, n)
	points[0] = e.cfg.Field.One()
	for i := 1; i < n; i++ {
		points[i] = points[i-1].Mul(e.cfg.PrimitiveElement)
	}
	return points
}

// Encode splits the message into k data shards and appends the parity
// shards. The message length must be exactly DataShards*ShardSize.
func (e *Encoder) Encode(message []byte) ([][]byte, error) {
	k := e.cfg.DataShards
	if len(message) != k*e.cfg.ShardSize {
		return nil, fmt.Errorf("rs: message size %d, want %d", len(message), k*e.cfg.ShardSize)
	}

	shards := make([][]byte, k+e.cfg.ParityShards)
	rows := make([][]field.Element, k)
	for i := 0; i < k; i++ {
		shard := message[i*e.cfg.ShardSize : (i+1)*e.cfg.ShardSize]
		shards[i] = append([]byte(nil), shard...)
		rows[i] = field.SplitBits(shard, e.bitsPerElement, e.cfg.Field)
	}

	// Each parity shard is a row of G times the data vector, computed
	// element position by element position.
	for p := 0; p < e.cfg.ParityShards; p++ {
		coeffs := e.generatorMatrix[k+p]
		acc := make([]field.Element, e.elementsPerRow)
		for j := range acc {
			acc[j] = e.cfg.Field.Zero()
		}
		for i := 0; i < k; i++ {
			for j := 0; j < e.elementsPerRow; j++ {
				acc[j] = acc[j].Add(coeffs[i].Mul(rows[i][j]))
			}
		}
		shards[k+p] = field.JoinBits(acc, e.bitsPerElement)
	}
	return shards, nil
}

// Reconstruct rebuilds the original message from any DataShards of the
// encoded shards, keyed by shard index.
func (e *Encoder) Reconstruct(shards map[int][]byte) ([]byte, error) {
	k := e.cfg.DataShards
	n := k + e.cfg.ParityShards
	if len(shards) < k {
		return nil, fmt.Errorf("rs: insufficient shards: have %d, need %d", len(shards), k)
	}

	// Pick k surviving shards; their rows of G form the system to solve.
	indices := make([]int, 0, k)
	for idx := 0; idx < n && len(indices) < k; idx++ {
		shard, ok := shards[idx]
		if !ok {
			continue
		}
		if len(shard) != e.cfg.ShardSize {
			return nil, fmt.Errorf("rs: shard %d has size %d, want %d", idx, len(shard), e.cfg.ShardSize)
		}
		indices = append(indices, idx)
	}
	if len(indices) < k {
		return nil, fmt.Errorf("rs: insufficient shards: have %d, need %d", len(indices), k)
	}

	decodeMatrix := make([][]field.Element, k)
	received := make([][]field.Element, k)
	for i, idx := range indices {
		decodeMatrix[i] = e.generatorMatrix[idx]
		received[i] = field.SplitBits(shards[idx], e.bitsPerElement, e.cfg.Field)
	}

	recovered, err := field.RecoverVectors(decodeMatrix, received, e.cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("rs: reconstruction failed: %w", err)
	}

	message := make([]byte, k*e.cfg.ShardSize)
	for i := 0; i < k; i++ {
		copy(message[i*e.cfg.ShardSize:], field.JoinBits(recovered[i], e.bitsPerElement))
	}
	return message, nil
}

// DataShards returns k.
func (e *Encoder) DataShards() int { return e.cfg.DataShards }

// TotalShards returns n, the data plus parity shard count.
func (e *Encoder) TotalShards() int { return e.cfg.DataShards + e.cfg.ParityShards }
