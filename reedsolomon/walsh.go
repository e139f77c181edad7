package reedsolomon

// fwht 对 data 的前 size 个元素原地执行迭代式基 2 沃尔什-哈达玛变换,
// 运算按 kOneMask 折叠。size 必须是 2 的幂;构建域表和 evalErrorPolynomial
// 都传入 kFieldSize。
func fwht(data []Multiplier, size int) {
	departNo := 1
	for departNo < size {
		departNoNext := departNo << 1
		j := 0
		for j < size {
			for i := j; i < departNo+j; i++ {
				a := Wide(data[i])
				b := Wide(data[i+departNo])
				tmp1 := a + b
				tmp2 := a + Wide(kOneMask) - b
				data[i] = Multiplier((tmp1 & Wide(kOneMask)) + (tmp1 >> kFieldBits))
				data[i+departNo] = Multiplier((tmp2 & Wide(kOneMask)) + (tmp2 >> kFieldBits))
			}
			j += departNoNext
		}
		departNo = departNoNext
	}
}
