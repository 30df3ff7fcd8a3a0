package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
)

var bytesBuffer = sync.Pool{
	New: func() interface{} { return &bytes.Buffer{} },
}

// Fingerprint identifies the exact contents and order of a training set.
func (ts TrainingSet) Fingerprint() string {
	buffer := bytesBuffer.Get().(*bytes.Buffer)
	defer bytesBuffer.Put(buffer)
	defer buffer.Reset()

	for _, s := range ts {
		buffer.WriteString(strconv.FormatFloat(s.Glucose, 'g', -1, 64))
		buffer.WriteByte(',')
		buffer.WriteString(strconv.FormatFloat(s.BloodPressure, 'g', -1, 64))
		buffer.WriteByte(',')
		buffer.WriteString(strconv.FormatFloat(s.Age, 'g', -1, 64))
		buffer.WriteByte(',')
		buffer.WriteString(strconv.Itoa(int(s.Diabetic)))
		buffer.WriteByte('\n')
	}
	sum := sha256.Sum256(buffer.Bytes())
	return hex.EncodeToString(sum[:])
}
