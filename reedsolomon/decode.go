package reedsolomon

// Reconstruct 根据码字位置索引的分片集合恢复原始数据:received 的第 p 个
// 元素就是码字位置 p 上的分片,nil 或零长度的分片表示该位置缺失。
// received 的长度可以小于 N(),末尾缺少的位置一律按擦除处理。
//
// 返回的字节长度恒为 2*k 与分片符号数的乘积,可能比原始数据多出至多
// 2k-1 个零字节;分片本身不携带原始长度,调用方需要自行记录并截断。
func (c *Codec) Reconstruct(received [][]byte) ([]byte, error) {
	n, k := c.n, c.k

	present := make([]bool, n)
	presentCount := 0
	shardLenBytes := -1
	for i, s := range received {
		if i >= n {
			break
		}
		if len(s) == 0 {
			continue
		}
		if shardLenBytes == -1 {
			shardLenBytes = len(s)
		} else if len(s) != shardLenBytes {
			return nil, ErrInconsistentShardLengths
		}
		present[i] = true
		presentCount++
	}
	if presentCount < k {
		if c.opts.logger != nil {
			c.opts.logger.Warnf("reedsolomon: 重建只收到 %d 个分片,至少需要 %d 个", presentCount, k)
		}
		return nil, ErrNeedMoreShards
	}

	gap := shardGap(n, len(received))
	shardLenSyms := shardLenBytes / 2
	L := c.evalErrorPolynomial(present)

	out := make([]byte, 0, shardLenSyms*2*k)
	codeword := c.getScratch()
	defer c.putScratch(codeword)

	for col := 0; col < shardLenSyms; col++ {
		for p := 0; p < n; p++ {
			if present[p] {
				codeword[p] = Additive{V: fromBigEndian(received[p][2*col : 2*col+2])}
			} else {
				codeword[p] = Additive{}
			}
		}

		c.decodeMain(codeword, present, L)

		// 未擦除的位置直接取收到的原始字节,只有缺失位置使用解码值。
		for i := 0; i < k; i++ {
			var v Elt
			if present[i] {
				v = fromBigEndian(received[i][2*col : 2*col+2])
			} else {
				v = codeword[i].V
			}
			out = append(out, byte(v>>8), byte(v))
		}
	}

	if c.opts.logger != nil {
		c.opts.logger.Debugf("reedsolomon: 从 %d/%d 个分片重建出 %d 字节, 末尾缺口 %d", presentCount, n, len(out), gap)
	}
	return out, nil
}

// ReconstructFromSystematic 是调用方已持有前 k 个分片时的快速路径:
// 此时重建退化为逐列拼接符号,完全跳过 FFT 解码。
func (c *Codec) ReconstructFromSystematic(chunks [][]byte) ([]byte, error) {
	k := c.k
	if len(chunks) < k {
		return nil, ErrNeedMoreShards
	}

	firstLen := len(chunks[0])
	if firstLen == 0 {
		return nil, ErrEmptyShard
	}
	for i := 1; i < k; i++ {
		if len(chunks[i]) != firstLen {
			return nil, ErrInconsistentShardLengths
		}
	}

	shardLenSyms := firstLen / 2
	out := make([]byte, 0, shardLenSyms*2*k)
	for col := 0; col < shardLenSyms; col++ {
		for y := 0; y < k; y++ {
			out = append(out, chunks[y][2*col], chunks[y][2*col+1])
		}
	}
	return out, nil
}

// evalErrorPolynomial 在对数域上计算错误定位多项式 L:前 n 个位置中被擦除
// 的位置标记为 1,做一次沃尔什变换,与预计算的 logWalsh 逐点相乘并对
// kOneMask 取模,再做一次沃尔什变换,最后把每个被擦除位置的值取补
// (kOneMask - L[i])。两次变换的尺寸必须是整个域 kFieldSize 而不是 n,
// 与 logWalsh 的构建尺寸保持一致。
func (c *Codec) evalErrorPolynomial(present []bool) []Multiplier {
	L := make([]Multiplier, kFieldSize)
	for i := 0; i < c.n; i++ {
		if !present[i] {
			L[i] = 1
		}
	}

	fwht(L, kFieldSize)
	for i := range L {
		L[i] = Multiplier((uint64(L[i]) * uint64(c.tables.logWalsh[i])) % uint64(kOneMask))
	}
	fwht(L, kFieldSize)

	for i := 0; i < c.n; i++ {
		if !present[i] {
			L[i] = Multiplier(kOneMask) - L[i]
		}
	}
	return L
}

// decodeMain 对一个符号列原地执行新型基擦除解码。变换前的逐点乘法把每个
// 在场符号乘以其定位子、把未知位置清零;变换后的逐点乘法方向相反:只在
// 原本缺失的位置乘以 L[i] 得到恢复值,在场位置清零——Reconstruct 对在场
// 位置始终使用收到的原始字节,不使用 codeword 中的值。
func (c *Codec) decodeMain(codeword []Additive, present []bool, L []Multiplier) {
	n, k := c.n, c.k

	for i := 0; i < n; i++ {
		if present[i] {
			codeword[i] = codeword[i].mul(L[i], c.tables)
		} else {
			codeword[i] = Additive{}
		}
	}

	c.afft.inverseAfft(codeword, n, 0, c.tables)
	formalDerivative(codeword, n)
	c.afft.afft(codeword, n, 0, c.tables)

	for i := 0; i < k; i++ {
		if !present[i] {
			codeword[i] = codeword[i].mul(L[i], c.tables)
		} else {
			codeword[i] = Additive{}
		}
	}
}

// formalDerivative 在新型多项式基下计算"调整过的"形式导数,通过 XOR
// 累加兄弟单元完成。这里的 XOR 调度是解码器按位精确契约的一部分,
// 不是教科书意义上的导数。
func formalDerivative(cos []Additive, size int) {
	for i := 1; i < size; i++ {
		length := ((i ^ (i - 1)) + 1) >> 1
		for j := i - length; j < i; j++ {
			if j+length < len(cos) {
				cos[j].V ^= cos[j+length].V
			}
		}
	}

	for i := size; i < kFieldSize && i < len(cos); i <<= 1 {
		for j := 0; j < size; j++ {
			if j+i < len(cos) {
				cos[j].V ^= cos[j+i].V
			}
		}
	}
}
