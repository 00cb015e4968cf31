package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomInt32 生成一个安全的随机32位整数
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomIntRange 生成 [min, max] 区间内的安全随机整数
func RandomIntRange(min, max int) int {
	if max <= min {
		return min
	}
	span := uint32(max - min + 1)

	num := uint32(RandomInt32())
	return min + int(num%span)
}
