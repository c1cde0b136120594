// Package alpha is the factor registry: 191 formulas compiled into a
// typed table. Factor functions are pure; each takes an immutable panel
// and returns a matrix on the panel's axes.
package alpha

import (
	"fmt"
	"sort"

	"alphapanel/internal/panel"
)

// FactorID names one registered factor.
type FactorID string

// Fn computes a factor over a panel. Implementations panic *ops.OpError on
// structural misuse; the evaluation driver recovers.
type Fn func(*panel.Panel) *panel.Matrix

// Factor is one registry entry.
type Factor struct {
	ID FactorID
	Fn Fn
}

const (
	Alpha001 FactorID = "alpha001"
	Alpha002 FactorID = "alpha002"
	Alpha003 FactorID = "alpha003"
	Alpha004 FactorID = "alpha004"
	Alpha005 FactorID = "alpha005"
	Alpha006 FactorID = "alpha006"
	Alpha007 FactorID = "alpha007"
	Alpha008 FactorID = "alpha008"
	Alpha009 FactorID = "alpha009"
	Alpha010 FactorID = "alpha010"
	Alpha011 FactorID = "alpha011"
	Alpha012 FactorID = "alpha012"
	Alpha013 FactorID = "alpha013"
	Alpha014 FactorID = "alpha014"
	Alpha015 FactorID = "alpha015"
	Alpha016 FactorID = "alpha016"
	Alpha017 FactorID = "alpha017"
	Alpha018 FactorID = "alpha018"
	Alpha019 FactorID = "alpha019"
	Alpha020 FactorID = "alpha020"
	Alpha021 FactorID = "alpha021"
	Alpha022 FactorID = "alpha022"
	Alpha023 FactorID = "alpha023"
	Alpha024 FactorID = "alpha024"
	Alpha025 FactorID = "alpha025"
	Alpha026 FactorID = "alpha026"
	Alpha027 FactorID = "alpha027"
	Alpha028 FactorID = "alpha028"
	Alpha029 FactorID = "alpha029"
	Alpha030 FactorID = "alpha030"
	Alpha031 FactorID = "alpha031"
	Alpha032 FactorID = "alpha032"
	Alpha033 FactorID = "alpha033"
	Alpha034 FactorID = "alpha034"
	Alpha035 FactorID = "alpha035"
	Alpha036 FactorID = "alpha036"
	Alpha037 FactorID = "alpha037"
	Alpha038 FactorID = "alpha038"
	Alpha039 FactorID = "alpha039"
	Alpha040 FactorID = "alpha040"
	Alpha041 FactorID = "alpha041"
	Alpha042 FactorID = "alpha042"
	Alpha043 FactorID = "alpha043"
	Alpha044 FactorID = "alpha044"
	Alpha045 FactorID = "alpha045"
	Alpha046 FactorID = "alpha046"
	Alpha047 FactorID = "alpha047"
	Alpha048 FactorID = "alpha048"
	Alpha049 FactorID = "alpha049"
	Alpha050 FactorID = "alpha050"
	Alpha051 FactorID = "alpha051"
	Alpha052 FactorID = "alpha052"
	Alpha053 FactorID = "alpha053"
	Alpha054 FactorID = "alpha054"
	Alpha055 FactorID = "alpha055"
	Alpha056 FactorID = "alpha056"
	Alpha057 FactorID = "alpha057"
	Alpha058 FactorID = "alpha058"
	Alpha059 FactorID = "alpha059"
	Alpha060 FactorID = "alpha060"
	Alpha061 FactorID = "alpha061"
	Alpha062 FactorID = "alpha062"
	Alpha063 FactorID = "alpha063"
	Alpha064 FactorID = "alpha064"
	Alpha065 FactorID = "alpha065"
	Alpha066 FactorID = "alpha066"
	Alpha067 FactorID = "alpha067"
	Alpha068 FactorID = "alpha068"
	Alpha069 FactorID = "alpha069"
	Alpha070 FactorID = "alpha070"
	Alpha071 FactorID = "alpha071"
	Alpha072 FactorID = "alpha072"
	Alpha073 FactorID = "alpha073"
	Alpha074 FactorID = "alpha074"
	Alpha075 FactorID = "alpha075"
	Alpha076 FactorID = "alpha076"
	Alpha077 FactorID = "alpha077"
	Alpha078 FactorID = "alpha078"
	Alpha079 FactorID = "alpha079"
	Alpha080 FactorID = "alpha080"
	Alpha081 FactorID = "alpha081"
	Alpha082 FactorID = "alpha082"
	Alpha083 FactorID = "alpha083"
	Alpha084 FactorID = "alpha084"
	Alpha085 FactorID = "alpha085"
	Alpha086 FactorID = "alpha086"
	Alpha087 FactorID = "alpha087"
	Alpha088 FactorID = "alpha088"
	Alpha089 FactorID = "alpha089"
	Alpha090 FactorID = "alpha090"
	Alpha091 FactorID = "alpha091"
	Alpha092 FactorID = "alpha092"
	Alpha093 FactorID = "alpha093"
	Alpha094 FactorID = "alpha094"
	Alpha095 FactorID = "alpha095"
	Alpha096 FactorID = "alpha096"
	Alpha097 FactorID = "alpha097"
	Alpha098 FactorID = "alpha098"
	Alpha099 FactorID = "alpha099"
	Alpha100 FactorID = "alpha100"
	Alpha101 FactorID = "alpha101"
	Alpha102 FactorID = "alpha102"
	Alpha103 FactorID = "alpha103"
	Alpha104 FactorID = "alpha104"
	Alpha105 FactorID = "alpha105"
	Alpha106 FactorID = "alpha106"
	Alpha107 FactorID = "alpha107"
	Alpha108 FactorID = "alpha108"
	Alpha109 FactorID = "alpha109"
	Alpha110 FactorID = "alpha110"
	Alpha111 FactorID = "alpha111"
	Alpha112 FactorID = "alpha112"
	Alpha113 FactorID = "alpha113"
	Alpha114 FactorID = "alpha114"
	Alpha115 FactorID = "alpha115"
	Alpha116 FactorID = "alpha116"
	Alpha117 FactorID = "alpha117"
	Alpha118 FactorID = "alpha118"
	Alpha119 FactorID = "alpha119"
	Alpha120 FactorID = "alpha120"
	Alpha121 FactorID = "alpha121"
	Alpha122 FactorID = "alpha122"
	Alpha123 FactorID = "alpha123"
	Alpha124 FactorID = "alpha124"
	Alpha125 FactorID = "alpha125"
	Alpha126 FactorID = "alpha126"
	Alpha127 FactorID = "alpha127"
	Alpha128 FactorID = "alpha128"
	Alpha129 FactorID = "alpha129"
	Alpha130 FactorID = "alpha130"
	Alpha131 FactorID = "alpha131"
	Alpha132 FactorID = "alpha132"
	Alpha133 FactorID = "alpha133"
	Alpha134 FactorID = "alpha134"
	Alpha135 FactorID = "alpha135"
	Alpha136 FactorID = "alpha136"
	Alpha137 FactorID = "alpha137"
	Alpha138 FactorID = "alpha138"
	Alpha139 FactorID = "alpha139"
	Alpha140 FactorID = "alpha140"
	Alpha141 FactorID = "alpha141"
	Alpha142 FactorID = "alpha142"
	Alpha143 FactorID = "alpha143"
	Alpha144 FactorID = "alpha144"
	Alpha145 FactorID = "alpha145"
	Alpha146 FactorID = "alpha146"
	Alpha147 FactorID = "alpha147"
	Alpha148 FactorID = "alpha148"
	Alpha149 FactorID = "alpha149"
	Alpha150 FactorID = "alpha150"
	Alpha151 FactorID = "alpha151"
	Alpha152 FactorID = "alpha152"
	Alpha153 FactorID = "alpha153"
	Alpha154 FactorID = "alpha154"
	Alpha155 FactorID = "alpha155"
	Alpha156 FactorID = "alpha156"
	Alpha157 FactorID = "alpha157"
	Alpha158 FactorID = "alpha158"
	Alpha159 FactorID = "alpha159"
	Alpha160 FactorID = "alpha160"
	Alpha161 FactorID = "alpha161"
	Alpha162 FactorID = "alpha162"
	Alpha163 FactorID = "alpha163"
	Alpha164 FactorID = "alpha164"
	Alpha165 FactorID = "alpha165"
	Alpha166 FactorID = "alpha166"
	Alpha167 FactorID = "alpha167"
	Alpha168 FactorID = "alpha168"
	Alpha169 FactorID = "alpha169"
	Alpha170 FactorID = "alpha170"
	Alpha171 FactorID = "alpha171"
	Alpha172 FactorID = "alpha172"
	Alpha173 FactorID = "alpha173"
	Alpha174 FactorID = "alpha174"
	Alpha175 FactorID = "alpha175"
	Alpha176 FactorID = "alpha176"
	Alpha177 FactorID = "alpha177"
	Alpha178 FactorID = "alpha178"
	Alpha179 FactorID = "alpha179"
	Alpha180 FactorID = "alpha180"
	Alpha181 FactorID = "alpha181"
	Alpha182 FactorID = "alpha182"
	Alpha183 FactorID = "alpha183"
	Alpha184 FactorID = "alpha184"
	Alpha185 FactorID = "alpha185"
	Alpha186 FactorID = "alpha186"
	Alpha187 FactorID = "alpha187"
	Alpha188 FactorID = "alpha188"
	Alpha189 FactorID = "alpha189"
	Alpha190 FactorID = "alpha190"
	Alpha191 FactorID = "alpha191"
)

var factors = []Factor{
	{ID: Alpha001, Fn: alpha001},
	{ID: Alpha002, Fn: alpha002},
	{ID: Alpha003, Fn: alpha003},
	{ID: Alpha004, Fn: alpha004},
	{ID: Alpha005, Fn: alpha005},
	{ID: Alpha006, Fn: alpha006},
	{ID: Alpha007, Fn: alpha007},
	{ID: Alpha008, Fn: alpha008},
	{ID: Alpha009, Fn: alpha009},
	{ID: Alpha010, Fn: alpha010},
	{ID: Alpha011, Fn: alpha011},
	{ID: Alpha012, Fn: alpha012},
	{ID: Alpha013, Fn: alpha013},
	{ID: Alpha014, Fn: alpha014},
	{ID: Alpha015, Fn: alpha015},
	{ID: Alpha016, Fn: alpha016},
	{ID: Alpha017, Fn: alpha017},
	{ID: Alpha018, Fn: alpha018},
	{ID: Alpha019, Fn: alpha019},
	{ID: Alpha020, Fn: alpha020},
	{ID: Alpha021, Fn: alpha021},
	{ID: Alpha022, Fn: alpha022},
	{ID: Alpha023, Fn: alpha023},
	{ID: Alpha024, Fn: alpha024},
	{ID: Alpha025, Fn: alpha025},
	{ID: Alpha026, Fn: alpha026},
	{ID: Alpha027, Fn: alpha027},
	{ID: Alpha028, Fn: alpha028},
	{ID: Alpha029, Fn: alpha029},
	{ID: Alpha030, Fn: alpha030},
	{ID: Alpha031, Fn: alpha031},
	{ID: Alpha032, Fn: alpha032},
	{ID: Alpha033, Fn: alpha033},
	{ID: Alpha034, Fn: alpha034},
	{ID: Alpha035, Fn: alpha035},
	{ID: Alpha036, Fn: alpha036},
	{ID: Alpha037, Fn: alpha037},
	{ID: Alpha038, Fn: alpha038},
	{ID: Alpha039, Fn: alpha039},
	{ID: Alpha040, Fn: alpha040},
	{ID: Alpha041, Fn: alpha041},
	{ID: Alpha042, Fn: alpha042},
	{ID: Alpha043, Fn: alpha043},
	{ID: Alpha044, Fn: alpha044},
	{ID: Alpha045, Fn: alpha045},
	{ID: Alpha046, Fn: alpha046},
	{ID: Alpha047, Fn: alpha047},
	{ID: Alpha048, Fn: alpha048},
	{ID: Alpha049, Fn: alpha049},
	{ID: Alpha050, Fn: alpha050},
	{ID: Alpha051, Fn: alpha051},
	{ID: Alpha052, Fn: alpha052},
	{ID: Alpha053, Fn: alpha053},
	{ID: Alpha054, Fn: alpha054},
	{ID: Alpha055, Fn: alpha055},
	{ID: Alpha056, Fn: alpha056},
	{ID: Alpha057, Fn: alpha057},
	{ID: Alpha058, Fn: alpha058},
	{ID: Alpha059, Fn: alpha059},
	{ID: Alpha060, Fn: alpha060},
	{ID: Alpha061, Fn: alpha061},
	{ID: Alpha062, Fn: alpha062},
	{ID: Alpha063, Fn: alpha063},
	{ID: Alpha064, Fn: alpha064},
	{ID: Alpha065, Fn: alpha065},
	{ID: Alpha066, Fn: alpha066},
	{ID: Alpha067, Fn: alpha067},
	{ID: Alpha068, Fn: alpha068},
	{ID: Alpha069, Fn: alpha069},
	{ID: Alpha070, Fn: alpha070},
	{ID: Alpha071, Fn: alpha071},
	{ID: Alpha072, Fn: alpha072},
	{ID: Alpha073, Fn: alpha073},
	{ID: Alpha074, Fn: alpha074},
	{ID: Alpha075, Fn: alpha075},
	{ID: Alpha076, Fn: alpha076},
	{ID: Alpha077, Fn: alpha077},
	{ID: Alpha078, Fn: alpha078},
	{ID: Alpha079, Fn: alpha079},
	{ID: Alpha080, Fn: alpha080},
	{ID: Alpha081, Fn: alpha081},
	{ID: Alpha082, Fn: alpha082},
	{ID: Alpha083, Fn: alpha083},
	{ID: Alpha084, Fn: alpha084},
	{ID: Alpha085, Fn: alpha085},
	{ID: Alpha086, Fn: alpha086},
	{ID: Alpha087, Fn: alpha087},
	{ID: Alpha088, Fn: alpha088},
	{ID: Alpha089, Fn: alpha089},
	{ID: Alpha090, Fn: alpha090},
	{ID: Alpha091, Fn: alpha091},
	{ID: Alpha092, Fn: alpha092},
	{ID: Alpha093, Fn: alpha093},
	{ID: Alpha094, Fn: alpha094},
	{ID: Alpha095, Fn: alpha095},
	{ID: Alpha096, Fn: alpha096},
	{ID: Alpha097, Fn: alpha097},
	{ID: Alpha098, Fn: alpha098},
	{ID: Alpha099, Fn: alpha099},
	{ID: Alpha100, Fn: alpha100},
	{ID: Alpha101, Fn: alpha101},
	{ID: Alpha102, Fn: alpha102},
	{ID: Alpha103, Fn: alpha103},
	{ID: Alpha104, Fn: alpha104},
	{ID: Alpha105, Fn: alpha105},
	{ID: Alpha106, Fn: alpha106},
	{ID: Alpha107, Fn: alpha107},
	{ID: Alpha108, Fn: alpha108},
	{ID: Alpha109, Fn: alpha109},
	{ID: Alpha110, Fn: alpha110},
	{ID: Alpha111, Fn: alpha111},
	{ID: Alpha112, Fn: alpha112},
	{ID: Alpha113, Fn: alpha113},
	{ID: Alpha114, Fn: alpha114},
	{ID: Alpha115, Fn: alpha115},
	{ID: Alpha116, Fn: alpha116},
	{ID: Alpha117, Fn: alpha117},
	{ID: Alpha118, Fn: alpha118},
	{ID: Alpha119, Fn: alpha119},
	{ID: Alpha120, Fn: alpha120},
	{ID: Alpha121, Fn: alpha121},
	{ID: Alpha122, Fn: alpha122},
	{ID: Alpha123, Fn: alpha123},
	{ID: Alpha124, Fn: alpha124},
	{ID: Alpha125, Fn: alpha125},
	{ID: Alpha126, Fn: alpha126},
	{ID: Alpha127, Fn: alpha127},
	{ID: Alpha128, Fn: alpha128},
	{ID: Alpha129, Fn: alpha129},
	{ID: Alpha130, Fn: alpha130},
	{ID: Alpha131, Fn: alpha131},
	{ID: Alpha132, Fn: alpha132},
	{ID: Alpha133, Fn: alpha133},
	{ID: Alpha134, Fn: alpha134},
	{ID: Alpha135, Fn: alpha135},
	{ID: Alpha136, Fn: alpha136},
	{ID: Alpha137, Fn: alpha137},
	{ID: Alpha138, Fn: alpha138},
	{ID: Alpha139, Fn: alpha139},
	{ID: Alpha140, Fn: alpha140},
	{ID: Alpha141, Fn: alpha141},
	{ID: Alpha142, Fn: alpha142},
	{ID: Alpha143, Fn: alpha143},
	{ID: Alpha144, Fn: alpha144},
	{ID: Alpha145, Fn: alpha145},
	{ID: Alpha146, Fn: alpha146},
	{ID: Alpha147, Fn: alpha147},
	{ID: Alpha148, Fn: alpha148},
	{ID: Alpha149, Fn: alpha149},
	{ID: Alpha150, Fn: alpha150},
	{ID: Alpha151, Fn: alpha151},
	{ID: Alpha152, Fn: alpha152},
	{ID: Alpha153, Fn: alpha153},
	{ID: Alpha154, Fn: alpha154},
	{ID: Alpha155, Fn: alpha155},
	{ID: Alpha156, Fn: alpha156},
	{ID: Alpha157, Fn: alpha157},
	{ID: Alpha158, Fn: alpha158},
	{ID: Alpha159, Fn: alpha159},
	{ID: Alpha160, Fn: alpha160},
	{ID: Alpha161, Fn: alpha161},
	{ID: Alpha162, Fn: alpha162},
	{ID: Alpha163, Fn: alpha163},
	{ID: Alpha164, Fn: alpha164},
	{ID: Alpha165, Fn: alpha165},
	{ID: Alpha166, Fn: alpha166},
	{ID: Alpha167, Fn: alpha167},
	{ID: Alpha168, Fn: alpha168},
	{ID: Alpha169, Fn: alpha169},
	{ID: Alpha170, Fn: alpha170},
	{ID: Alpha171, Fn: alpha171},
	{ID: Alpha172, Fn: alpha172},
	{ID: Alpha173, Fn: alpha173},
	{ID: Alpha174, Fn: alpha174},
	{ID: Alpha175, Fn: alpha175},
	{ID: Alpha176, Fn: alpha176},
	{ID: Alpha177, Fn: alpha177},
	{ID: Alpha178, Fn: alpha178},
	{ID: Alpha179, Fn: alpha179},
	{ID: Alpha180, Fn: alpha180},
	{ID: Alpha181, Fn: alpha181},
	{ID: Alpha182, Fn: alpha182},
	{ID: Alpha183, Fn: alpha183},
	{ID: Alpha184, Fn: alpha184},
	{ID: Alpha185, Fn: alpha185},
	{ID: Alpha186, Fn: alpha186},
	{ID: Alpha187, Fn: alpha187},
	{ID: Alpha188, Fn: alpha188},
	{ID: Alpha189, Fn: alpha189},
	{ID: Alpha190, Fn: alpha190},
	{ID: Alpha191, Fn: alpha191},
}

var byID = func() map[FactorID]Factor {
	m := make(map[FactorID]Factor, len(factors))
	for _, f := range factors {
		m[f.ID] = f
	}
	return m
}()

// Lookup returns the factor registered under id.
func Lookup(id FactorID) (Factor, error) {
	f, ok := byID[id]
	if !ok {
		return Factor{}, fmt.Errorf("alpha: unknown factor %q", id)
	}
	return f, nil
}

// All returns every registered factor in ID order.
func All() []Factor {
	out := make([]Factor, len(factors))
	copy(out, factors)
	return out
}

// IDs returns every registered factor ID in sorted order.
func IDs() []FactorID {
	out := make([]FactorID, 0, len(factors))
	for _, f := range factors {
		out = append(out, f.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
