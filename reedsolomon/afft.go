package reedsolomon

import "sync"

// afftTables 保存新型多项式基加法 FFT 的蝶形系数调度表:skews 是一张
// 连续的 65535 项表,按 (层内相对位置 + index - 1) 索引,其中 index 是
// 当前被变换块的平移量。
type afftTables struct {
	skews [kOneMask]Multiplier
}

var (
	afftOnce  sync.Once
	afftTable afftTables
)

// getAfftTables 返回进程范围内共享的加法 FFT 蝶形系数表,
// 首次调用时基于域表构建。
func getAfftTables() *afftTables {
	afftOnce.Do(func() {
		initAfftTables(getFieldTables())
	})
	return &afftTable
}

// initAfftTables 构建 skews:把工作基数组的 XOR 平移副本按 2^(m+1) 的
// 步长传播到加法域的蝶形系数表中,再把结果转换到对数域。循环结构本身
// 是按位精确契约的一部分,不能改写成其他等价推导。
func initAfftTables(t *fieldTables) {
	var base [kFieldBits - 1]Elt
	var skewsAdditive [kOneMask]Additive

	for i := 1; i < kFieldBits; i++ {
		base[i-1] = 1 << uint(i)
	}

	for m := 0; m < kFieldBits-1; m++ {
		step := 1 << uint(m+1)
		skewsAdditive[(1<<uint(m))-1] = Additive{}

		for i := m; i < kFieldBits-1; i++ {
			s := 1 << uint(i+1)
			j := (1 << uint(m)) - 1
			for j < s {
				skewsAdditive[j+s] = Additive{V: skewsAdditive[j].V ^ base[i]}
				j += step
			}
		}

		idx := Additive{V: base[m]}.mul(Additive{V: base[m] ^ 1}.toMultiplier(t), t)
		base[m] = Elt(kOneMask) - Elt(idx.toMultiplier(t))
		for i := m + 1; i < kFieldBits-1; i++ {
			b := (Wide(Additive{V: base[i] ^ 1}.toMultiplier(t)) + Wide(base[m])) % Wide(kOneMask)
			base[i] = Additive{V: base[i]}.mul(Multiplier(b), t).V
		}
	}

	var result afftTables
	for i := 0; i < int(kOneMask); i++ {
		result.skews[i] = skewsAdditive[i].toMultiplier(t)
	}

	afftTable = result
}

// inverseAfft 对 data(长度 size,2 的幂)原地执行逆加法 FFT。index
// 选择全局蝶形系数表的子区间:编码时第一个 k 大小的块传 0,之后的平移块
// 依次传 k、2k、3k……
func (a *afftTables) inverseAfft(data []Additive, size, index int, t *fieldTables) {
	departNo := 1
	for departNo < size {
		j := departNo
		for j < size {
			for i := j - departNo; i < j; i++ {
				data[i+departNo].V ^= data[i].V
			}

			skew := a.skews[j+index-1]
			if skew != Multiplier(kOneMask) {
				for i := j - departNo; i < j; i++ {
					data[i].V ^= data[i+departNo].mul(skew, t).V
				}
			}
			j += departNo << 1
		}
		departNo <<= 1
	}
}

// afft 是 inverseAfft 的镜像变换:每一层先做带蝶形系数的条件 XOR,
// 再做无条件 XOR。
func (a *afftTables) afft(data []Additive, size, index int, t *fieldTables) {
	departNo := size >> 1
	for departNo > 0 {
		j := departNo
		for j < size {
			skew := a.skews[j+index-1]
			if skew != Multiplier(kOneMask) {
				for i := j - departNo; i < j; i++ {
					data[i].V ^= data[i+departNo].mul(skew, t).V
				}
			}
			for i := j - departNo; i < j; i++ {
				data[i+departNo].V ^= data[i].V
			}
			j += departNo << 1
		}
		departNo >>= 1
	}
}
