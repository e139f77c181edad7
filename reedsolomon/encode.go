package reedsolomon

// Encode 把 data 编码为 wantedN 个分片,其中任意 k 个分片都足以通过
// Reconstruct 还原原始数据。前 k 个分片就是按大端 16 位符号交错排列的
// 原始数据(系统码性质):调用方若持有全部前 k 个分片,可以直接调用
// ReconstructFromSystematic,或者逐列交错取出它们的符号。
func (c *Codec) Encode(data []byte) ([][]byte, error) {
	if len(data) == 0 {
		if c.opts.logger != nil {
			c.opts.logger.Errorf("reedsolomon: 编码收到空数据")
		}
		return nil, ErrPayloadSizeIsZero
	}

	shardLen := c.shardLen(len(data))
	k2 := c.k * 2

	shards := make([][]byte, c.wantedN)
	for i := range shards {
		shards[i] = make([]byte, shardLen)
	}

	scratch := c.getScratch()
	defer c.putScratch(scratch)

	for i := 0; i < len(data); i += k2 {
		end := i + k2
		if end > len(data) {
			end = len(data)
		}
		chunkIdx := i / k2

		codeword := scratch
		for j := range codeword {
			codeword[j] = Additive{}
		}
		packBigEndian(data[i:end], codeword)

		c.encodeSub(codeword)

		for v := 0; v < c.wantedN; v++ {
			writeBigEndian(codeword[v].V, shards[v][2*chunkIdx:2*chunkIdx+2])
		}
	}

	if c.opts.logger != nil {
		c.opts.logger.Debugf("reedsolomon: 已将 %d 字节编码为 %d 个 %d 字节的分片", len(data), c.wantedN, shardLen)
	}
	return shards, nil
}

// encodeSub 对 codeword 原地执行系统码 FFT 编码。codeword 长度为 n,
// 前 k 项是一个数据块打包后的符号,其余为零。返回时 codeword[0:k] 仍是
// 原始数据(系统码性质),codeword[k:n] 是其余验证人位置的校验符号。
func (c *Codec) encodeSub(codeword []Additive) {
	k := c.k
	n := c.n

	original := make([]Additive, k)
	copy(original, codeword[:k])

	c.afft.inverseAfft(codeword[:k], k, 0, c.tables)
	for shift := k; shift < n; shift += k {
		block := codeword[shift : shift+k]
		copy(block, codeword[:k])
		c.afft.afft(block, k, shift, c.tables)
	}

	copy(codeword[:k], original)
}

// packBigEndian 把字节流按大端 16 位符号打包到 dst 中,最后一个不完整的
// 符号用零补齐,dst 的剩余项保持为零。
func packBigEndian(bytes []byte, dst []Additive) {
	i := 0
	for ; i+1 < len(bytes); i += 2 {
		dst[i/2] = Additive{V: Elt(bytes[i])<<8 | Elt(bytes[i+1])}
	}
	if i < len(bytes) {
		dst[i/2] = Additive{V: Elt(bytes[i]) << 8}
	}
}

// writeBigEndian 把 v 以大端字节序写入 dst(len(dst) == 2)。
func writeBigEndian(v Elt, dst []byte) {
	dst[0] = byte(v >> 8)
	dst[1] = byte(v)
}

// fromBigEndian 从 src(len(src) == 2)读出一个大端 16 位符号。
func fromBigEndian(src []byte) Elt {
	return Elt(src[0])<<8 | Elt(src[1])
}
