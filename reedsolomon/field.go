package reedsolomon

import "sync"

// Elt 是 GF(2^16) 中的一个域元素,原始的加法基(XOR)表示形式。
type Elt uint16

// Wide 用于可能超出 16 位的中间和,使用前需要先折叠回 Elt 的范围。
type Wide uint32

// Multiplier 是非零域元素的对数域表示。kOneMask 表示"空操作"乘子
// (折叠意义下的乘法单位哨兵值,用于跳过被禁用的蝶形系数)。
type Multiplier uint16

const (
	kFieldBits = 16
	kFieldSize = 1 << kFieldBits // 65536

	// kGenerator 是用于枚举 GF(2^16) 乘法群的 LFSR 反馈多项式。
	kGenerator Elt = 0x2D

	// kOneMask 是全 1 的 16 位掩码:既是对数域运算的模数,
	// 也是"禁用蝶形系数"的哨兵乘子值。
	kOneMask Elt = kFieldSize - 1
)

// kBase 是用于将 LFSR 推导出的离散对数展开为域的加法表示的新型多项式基
// (Cantor 基)。这些常量是编解码器按位精确契约的一部分,必须原样复现,
// 不能在运行时重新推导。
var kBase = [kFieldBits]Elt{
	1, 44234, 15374, 5694, 50562, 60718, 37196, 16402,
	27800, 4312, 27250, 47360, 64952, 64308, 65336, 39198,
}

// fieldTables 保存进程内每个 Codec 共享的三张表:log、exp、logWalsh。
// 它们都是 kGenerator 和 kBase 的纯函数,因此只需要在进程范围内构建一次,
// 由 sync.Once 保护。
type fieldTables struct {
	log      [kFieldSize]Elt
	exp      [kFieldSize]Elt
	logWalsh [kFieldSize]Multiplier
}

var (
	tablesOnce sync.Once
	tables     fieldTables
)

// getFieldTables 返回进程范围内共享的域表,首次调用时构建。
func getFieldTables() *fieldTables {
	tablesOnce.Do(initFieldTables)
	return &tables
}

// initFieldTables 先用 kGenerator 驱动 LFSR 枚举乘法群,再通过 kBase
// 这一新型基展开 log/exp,最后把 logWalsh 计算为 log 的沃尔什变换。
func initFieldTables() {
	var log, exp [kFieldSize]Elt

	const mask = Elt(1<<(kFieldBits-1)) - 1
	state := uint(1)
	for i := uint(0); i < uint(kOneMask); i++ {
		exp[state] = Elt(i)
		if state&(1<<(kFieldBits-1)) != 0 {
			state &= uint(mask)
			state = (state << 1) ^ uint(kGenerator)
		} else {
			state <<= 1
		}
	}
	exp[0] = kOneMask
	log[0] = 0

	// 展开为 Cantor 基。
	for i := uint(0); i < kFieldBits; i++ {
		for j := uint(0); j < (uint(1) << i); j++ {
			log[j+(1<<i)] = log[j] ^ kBase[i]
		}
	}

	for i := 0; i < kFieldSize; i++ {
		log[i] = exp[log[i]]
	}
	for i := 0; i < kFieldSize; i++ {
		exp[log[i]] = Elt(i)
	}
	exp[kOneMask] = exp[0]

	tables.log = log
	tables.exp = exp

	// 预计算 FWHT(log[i])。
	var logWalsh [kFieldSize]Multiplier
	for i := range logWalsh {
		logWalsh[i] = Multiplier(log[i])
	}
	logWalsh[0] = 0
	fwht(logWalsh[:], kFieldSize)
	tables.logWalsh = logWalsh
}

// Additive 以 XOR 加法形式包装一个域元素,是加法 FFT 中贯穿始终的系数类型。
type Additive struct {
	V Elt
}

// toMultiplier 将 a 转换为其对数域的 Multiplier 表示。
func (a Additive) toMultiplier(t *fieldTables) Multiplier {
	return Multiplier(t.log[a.V])
}

// mul 返回域上的 a * m;对任意 m,mul(0, m) == 0。
//
// 参数:
//   - m: 乘子的对数域表示
//   - t: 进程共享的域表
//
// 返回值:
//   - a 与 m 相乘后的结果,仍为加法表示
func (a Additive) mul(m Multiplier, t *fieldTables) Additive {
	if a.V == 0 {
		return Additive{}
	}
	log := Wide(t.log[a.V]) + Wide(m)
	offset := (log & Wide(kOneMask)) + (log >> kFieldBits)
	return Additive{V: t.exp[offset]}
}
