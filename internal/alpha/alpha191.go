package alpha

import (
	"math"

	"alphapanel/internal/panel"
)

// Factors 102-191 follow the GTJA-style formula set. Bodies are literal
// operator compositions of the formula in each comment.

// (close - open) / ((high - low) + 0.001)
func alpha102(p *panel.Panel) *panel.Matrix {
	return div(sub(p.Close(), p.Open()), addS(sub(p.High(), p.Low()), 0.001))
}

// (close - open) / volume
func alpha103(p *panel.Panel) *panel.Matrix {
	return div(sub(p.Close(), p.Open()), p.Volume())
}

// -1 * rank(correlation(rank(volume), rank(close), 6))
func alpha104(p *panel.Panel) *panel.Matrix {
	return neg(rank(corr(rank(p.Volume()), rank(p.Close()), 6)))
}

// -1 * correlation(rank(volume), rank(close), 10)
func alpha105(p *panel.Panel) *panel.Matrix {
	return neg(corr(rank(p.Volume()), rank(p.Close()), 10))
}

// close - delay(close, 1)
func alpha106(p *panel.Panel) *panel.Matrix {
	return sub(p.Close(), delay(p.Close(), 1))
}

// (close - delay(close, 1)) / delay(close, 1) * 100
func alpha107(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	return mulS(div(sub(p.Close(), d), d), 100)
}

// rank(correlation(rank(volume), rank(open), 10))
func alpha108(p *panel.Panel) *panel.Matrix {
	return rank(corr(rank(p.Volume()), rank(p.Open()), 10))
}

// -1 * rank(correlation(rank(volume), rank(high), 10))
func alpha109(p *panel.Panel) *panel.Matrix {
	return neg(rank(corr(rank(p.Volume()), rank(p.High()), 10)))
}

// rank(correlation(rank(volume), rank(low), 10))
func alpha110(p *panel.Panel) *panel.Matrix {
	return rank(corr(rank(p.Volume()), rank(p.Low()), 10))
}

// rank(volume / delay(volume, 1))
func alpha111(p *panel.Panel) *panel.Matrix {
	return rank(div(p.Volume(), delay(p.Volume(), 1)))
}

// -1 * rank(correlation(rank(close), rank(volume), 10))
func alpha112(p *panel.Panel) *panel.Matrix {
	return neg(rank(corr(rank(p.Close()), rank(p.Volume()), 10)))
}

// rank(correlation(rank(low), rank(volume), 10))
func alpha113(p *panel.Panel) *panel.Matrix {
	return rank(corr(rank(p.Low()), rank(p.Volume()), 10))
}

// rank(delta(close, 1)) * -1
func alpha114(p *panel.Panel) *panel.Matrix {
	return neg(rank(delta(p.Close(), 1)))
}

// rank(delta(volume, 1))
func alpha115(p *panel.Panel) *panel.Matrix {
	return rank(delta(p.Volume(), 1))
}

// rank(close - open)
func alpha116(p *panel.Panel) *panel.Matrix {
	return rank(sub(p.Close(), p.Open()))
}

// rank((high - low) / volume)
func alpha117(p *panel.Panel) *panel.Matrix {
	return rank(div(sub(p.High(), p.Low()), p.Volume()))
}

// rank(close / delay(close, 1) - 1)
func alpha118(p *panel.Panel) *panel.Matrix {
	return rank(addS(div(p.Close(), delay(p.Close(), 1)), -1))
}

// rank(correlation(close, delta(close, 1), 5))
func alpha119(p *panel.Panel) *panel.Matrix {
	return rank(corr(p.Close(), delta(p.Close(), 1), 5))
}

// rank(correlation(rank(volume), rank(vwap), 5))
func alpha120(p *panel.Panel) *panel.Matrix {
	return rank(corr(rank(p.Volume()), rank(p.VWAP()), 5))
}

// rank(delta(((close - low) - (high - close)) / (high - low), 1))
func alpha121(p *panel.Panel) *panel.Matrix {
	pos := div(sub(sub(p.Close(), p.Low()), sub(p.High(), p.Close())), sub(p.High(), p.Low()))
	return rank(delta(pos, 1))
}

// rank((high + low)/2 - close)
func alpha122(p *panel.Panel) *panel.Matrix {
	return rank(sub(divS(add(p.High(), p.Low()), 2), p.Close()))
}

// rank(high - low)
func alpha123(p *panel.Panel) *panel.Matrix {
	return rank(sub(p.High(), p.Low()))
}

// rank(close / open - 1)
func alpha124(p *panel.Panel) *panel.Matrix {
	return rank(addS(div(p.Close(), p.Open()), -1))
}

// rank(delta(close, 5))
func alpha125(p *panel.Panel) *panel.Matrix {
	return rank(delta(p.Close(), 5))
}

// rank(close / delay(close, 5) - 1)
func alpha126(p *panel.Panel) *panel.Matrix {
	return rank(addS(div(p.Close(), delay(p.Close(), 5)), -1))
}

// rank((close - delay(close, 10)) / delay(close, 10))
func alpha127(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 10)
	return rank(div(sub(p.Close(), d), d))
}

// rank(delta(volume, 5))
func alpha128(p *panel.Panel) *panel.Matrix {
	return rank(delta(p.Volume(), 5))
}

// rank(correlation(close, volume, 10))
func alpha129(p *panel.Panel) *panel.Matrix {
	return rank(corr(p.Close(), p.Volume(), 10))
}

// rank((close - open) / ((high - low) + 0.001)) * rank(volume)
func alpha130(p *panel.Panel) *panel.Matrix {
	r := div(sub(p.Close(), p.Open()), addS(sub(p.High(), p.Low()), 0.001))
	return mul(rank(r), rank(p.Volume()))
}

// rank(delta(close, 3) / delay(close, 3))
func alpha131(p *panel.Panel) *panel.Matrix {
	return rank(div(delta(p.Close(), 3), delay(p.Close(), 3)))
}

// rank(stddev(returns, 20))
func alpha132(p *panel.Panel) *panel.Matrix {
	return rank(stdDev(p.Returns(), 20))
}

// rank(correlation(rank(open), rank(volume), 10)) * -1
func alpha133(p *panel.Panel) *panel.Matrix {
	return neg(rank(corr(rank(p.Open()), rank(p.Volume()), 10)))
}

// rank(close - ts_min(close, 10))
func alpha134(p *panel.Panel) *panel.Matrix {
	return rank(sub(p.Close(), tsMin(p.Close(), 10)))
}

// rank(ts_max(close, 10) - close)
func alpha135(p *panel.Panel) *panel.Matrix {
	return rank(sub(tsMax(p.Close(), 10), p.Close()))
}

// rank((high - low) / close)
func alpha136(p *panel.Panel) *panel.Matrix {
	return rank(div(sub(p.High(), p.Low()), p.Close()))
}

// rank(volume / mean(volume, 20))
func alpha137(p *panel.Panel) *panel.Matrix {
	return rank(div(p.Volume(), adv(p, 20)))
}

// rank(delta(close - open, 5))
func alpha138(p *panel.Panel) *panel.Matrix {
	return rank(delta(sub(p.Close(), p.Open()), 5))
}

// rank(correlation(delta(close, 1), delta(volume, 1), 10))
func alpha139(p *panel.Panel) *panel.Matrix {
	return rank(corr(delta(p.Close(), 1), delta(p.Volume(), 1), 10))
}

// rank(delta(close, 7) * (1 - rank(decay_linear(volume / mean(volume, 20), 9))))
func alpha140(p *panel.Panel) *panel.Matrix {
	return rank(mul(
		delta(p.Close(), 7),
		subSM(1, rank(decayLinear(div(p.Volume(), adv(p, 20)), 9)))))
}

// rank(close - delay(close, 5))
func alpha141(p *panel.Panel) *panel.Matrix {
	return rank(sub(p.Close(), delay(p.Close(), 5)))
}

// rank((high - low) / volume)
func alpha142(p *panel.Panel) *panel.Matrix {
	return rank(div(sub(p.High(), p.Low()), p.Volume()))
}

// rank(close / delay(close, 1) - 1)
func alpha143(p *panel.Panel) *panel.Matrix {
	return rank(addS(div(p.Close(), delay(p.Close(), 1)), -1))
}

// rank(correlation(rank(volume), rank(close), 10)) * -1
func alpha144(p *panel.Panel) *panel.Matrix {
	return neg(rank(corr(rank(p.Volume()), rank(p.Close()), 10)))
}

// rank(delta(volume, 10))
func alpha145(p *panel.Panel) *panel.Matrix {
	return rank(delta(p.Volume(), 10))
}

// rank(delta(close, 10))
func alpha146(p *panel.Panel) *panel.Matrix {
	return rank(delta(p.Close(), 10))
}

// rank((close - open) / (high - low + 0.001))
func alpha147(p *panel.Panel) *panel.Matrix {
	return rank(div(sub(p.Close(), p.Open()), addS(sub(p.High(), p.Low()), 0.001)))
}

// rank(close / open - 1)
func alpha148(p *panel.Panel) *panel.Matrix {
	return rank(addS(div(p.Close(), p.Open()), -1))
}

// rank(delta(close - open, 1))
func alpha149(p *panel.Panel) *panel.Matrix {
	return rank(delta(sub(p.Close(), p.Open()), 1))
}

// rank(correlation(rank(high), rank(volume), 5))
func alpha150(p *panel.Panel) *panel.Matrix {
	return rank(corr(rank(p.High()), rank(p.Volume()), 5))
}

// sma(close - delay(close, 20), 20, 1)
func alpha151(p *panel.Panel) *panel.Matrix {
	return ema(sub(p.Close(), delay(p.Close(), 20)), 20, 1)
}

// sma(mean(delay(sma(delay(close/delay(close,9),1),9,1),1),12)
//   - mean(delay(sma(delay(close/delay(close,9),1),9,1),1),26), 9, 1)
func alpha152(p *panel.Panel) *panel.Matrix {
	inner := delay(ema(delay(div(p.Close(), delay(p.Close(), 9)), 1), 9, 1), 1)
	return ema(sub(mean(inner, 12), mean(inner, 26)), 9, 1)
}

// (mean(close, 3) + mean(close, 6) + mean(close, 12) + mean(close, 24)) / 4
func alpha153(p *panel.Panel) *panel.Matrix {
	return divS(add(add(mean(p.Close(), 3), mean(p.Close(), 6)),
		add(mean(p.Close(), 12), mean(p.Close(), 24))), 4)
}

// (vwap - ts_min(vwap, 16)) < correlation(vwap, mean(volume, 180), 18)
func alpha154(p *panel.Panel) *panel.Matrix {
	return lt(
		sub(p.VWAP(), tsMin(p.VWAP(), 16)),
		corr(p.VWAP(), adv(p, 180), 18))
}

// sma(volume, 13, 2) - sma(volume, 27, 2) - sma(sma(volume, 13, 2) - sma(volume, 27, 2), 10, 2)
func alpha155(p *panel.Panel) *panel.Matrix {
	d := sub(ema(p.Volume(), 13, 2), ema(p.Volume(), 27, 2))
	return sub(d, ema(d, 10, 2))
}

// max(rank(decay_linear(delta(vwap, 5), 3)),
//   rank(decay_linear(-1 * delta(open*0.15 + low*0.85, 2) / (open*0.15 + low*0.85), 3))) * -1
func alpha156(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Open(), 0.15), mulS(p.Low(), 0.85))
	p1 := rank(decayLinear(delta(p.VWAP(), 5), 3))
	p2 := rank(decayLinear(neg(div(delta(w, 2), w)), 3))
	return neg(max2(p1, p2))
}

// min(prod(rank(rank(log(sum(ts_min(rank(rank(-1 * rank(delta(close - 1, 5)))), 2), 1)))), 1), 5)
//   + ts_rank(delay(-1 * returns, 6), 5)
func alpha157(p *panel.Panel) *panel.Matrix {
	inner := neg(rank(delta(subS(p.Close(), 1), 5)))
	m := tsMin(rank(rank(inner)), 2)
	p1 := tsMin(product(rank(rank(logOf(tsSum(m, 1)))), 1), 5)
	return add(p1, tsRank(delay(neg(p.Returns()), 6), 5))
}

// ((high - sma(close, 15, 2)) - (low - sma(close, 15, 2))) / close
func alpha158(p *panel.Panel) *panel.Matrix {
	e := ema(p.Close(), 15, 2)
	return div(sub(sub(p.High(), e), sub(p.Low(), e)), p.Close())
}

// blended 6/12/24-day close position against true-range sums
func alpha159(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	lo := min2(p.Low(), d)
	hi := max2(p.High(), d)
	rng := sub(hi, lo)
	t1 := mulS(div(sub(p.Close(), tsSum(lo, 6)), tsSum(rng, 6)), 12*24)
	t2 := mulS(div(sub(p.Close(), tsSum(lo, 12)), tsSum(rng, 12)), 6*24)
	t3 := mulS(div(sub(p.Close(), tsSum(lo, 24)), tsSum(rng, 24)), 6*24)
	return mulS(add(add(t1, t2), t3), 100.0/(6*12+6*24+12*24))
}

// sma((close <= delay(close, 1) ? stddev(close, 20) : 0), 20, 1)
func alpha160(p *panel.Panel) *panel.Matrix {
	part := where(le(p.Close(), delay(p.Close(), 1)), stdDev(p.Close(), 20), constOf(p, 0))
	return ema(part, 20, 1)
}

// mean(max(max(high - low, abs(delay(close, 1) - high)), abs(delay(close, 1) - low)), 12)
func alpha161(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	tr := max2(max2(sub(p.High(), p.Low()), abs(sub(d, p.High()))), abs(sub(d, p.Low())))
	return mean(tr, 12)
}

// (rsi12 - ts_min(rsi12, 12)) / (ts_max(rsi12, 12) - ts_min(rsi12, 12))
// where rsi12 = sma(max(delta(close,1), 0), 12, 1) / sma(abs(delta(close,1)), 12, 1) * 100
func alpha162(p *panel.Panel) *panel.Matrix {
	dc := sub(p.Close(), delay(p.Close(), 1))
	rsi := mulS(div(ema(maxS(dc, 0), 12, 1), ema(abs(dc), 12, 1)), 100)
	lo := tsMin(rsi, 12)
	return div(sub(rsi, lo), sub(tsMax(rsi, 12), lo))
}

// rank(((-1 * returns) * mean(volume, 20)) * vwap * (high - close))
func alpha163(p *panel.Panel) *panel.Matrix {
	return rank(mul(mul(mul(neg(p.Returns()), adv(p, 20)), p.VWAP()), sub(p.High(), p.Close())))
}

// sma(((close > delay(close,1) ? 1/(close - delay(close,1)) : 1)
//   - ts_min(same, 12)) / (high - low) * 100, 13, 2)
func alpha164(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	part := where(gt(p.Close(), d), divSM(1, sub(p.Close(), d)), constOf(p, 1))
	inner := mulS(div(sub(part, tsMin(part, 12)), sub(p.High(), p.Low())), 100)
	return ema(inner, 13, 2)
}

// (max(sumac(close - mean(close, 48))) - min(sumac(close - mean(close, 48)))) / stddev(close, 48)
func alpha165(p *panel.Panel) *panel.Matrix {
	c := cumSum(sub(p.Close(), mean(p.Close(), 48)))
	return div(sub(tsMax(c, 48), tsMin(c, 48)), stdDev(p.Close(), 48))
}

// -20 * 19^1.5 * sum(ret - mean(ret, 20), 20) / (19 * 18 * sum(ret^2, 20)^1.5)
func alpha166(p *panel.Panel) *panel.Matrix {
	ret := addS(div(p.Close(), delay(p.Close(), 1)), -1)
	num := mulS(tsSum(sub(ret, mean(ret, 20)), 20), -20*math.Pow(19, 1.5))
	den := mulS(pow(tsSum(mul(ret, ret), 20), 1.5), 19*18)
	return div(num, den)
}

// sum((close - delay(close, 1) > 0 ? close - delay(close, 1) : 0), 12)
func alpha167(p *panel.Panel) *panel.Matrix {
	return tsSum(maxS(delta(p.Close(), 1), 0), 12)
}

// -1 * volume / mean(volume, 20)
func alpha168(p *panel.Panel) *panel.Matrix {
	return neg(div(p.Volume(), adv(p, 20)))
}

// sma(mean(delay(sma(close - delay(close, 1), 9, 1), 1), 12)
//   - mean(delay(sma(close - delay(close, 1), 9, 1), 1), 26), 10, 1)
func alpha169(p *panel.Panel) *panel.Matrix {
	inner := delay(ema(sub(p.Close(), delay(p.Close(), 1)), 9, 1), 1)
	return ema(sub(mean(inner, 12), mean(inner, 26)), 10, 1)
}

// ((rank(1/close) * volume / mean(volume, 20)) * (high * rank(high - close)
//   / (sum(high, 5)/5))) - rank(vwap - delay(vwap, 5))
func alpha170(p *panel.Panel) *panel.Matrix {
	t1 := div(mul(rank(divSM(1, p.Close())), p.Volume()), adv(p, 20))
	t2 := div(mul(p.High(), rank(sub(p.High(), p.Close()))), divS(tsSum(p.High(), 5), 5))
	return sub(mul(t1, t2), rank(sub(p.VWAP(), delay(p.VWAP(), 5))))
}

// (-1 * (low - close) * open^5) / ((close - high) * close^5)
func alpha171(p *panel.Panel) *panel.Matrix {
	return div(
		mul(neg(sub(p.Low(), p.Close())), pow(p.Open(), 5)),
		mul(sub(p.Close(), p.High()), pow(p.Close(), 5)))
}

// 6-day mean of the 14-day directional movement index
func alpha172(p *panel.Panel) *panel.Matrix {
	return mean(dmi14(p), 6)
}

// 3*sma(close, 13, 2) - 2*sma(sma(close, 13, 2), 13, 2)
//   + sma(sma(sma(log(close), 13, 2), 13, 2), 13, 2)
func alpha173(p *panel.Panel) *panel.Matrix {
	e := ema(p.Close(), 13, 2)
	return add(
		sub(mulS(e, 3), mulS(ema(e, 13, 2), 2)),
		ema(ema(ema(logOf(p.Close()), 13, 2), 13, 2), 13, 2))
}

// sma((close > delay(close, 1) ? stddev(close, 20) : 0), 20, 1)
func alpha174(p *panel.Panel) *panel.Matrix {
	part := where(gt(p.Close(), delay(p.Close(), 1)), stdDev(p.Close(), 20), constOf(p, 0))
	return ema(part, 20, 1)
}

// mean(max(max(high - low, abs(delay(close, 1) - high)), abs(delay(close, 1) - low)), 6)
func alpha175(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	tr := max2(max2(sub(p.High(), p.Low()), abs(sub(d, p.High()))), abs(sub(d, p.Low())))
	return mean(tr, 6)
}

// correlation(rank((close - ts_min(low, 12)) / (ts_max(high, 12) - ts_min(low, 12))), rank(volume), 6)
func alpha176(p *panel.Panel) *panel.Matrix {
	inner := div(
		sub(p.Close(), tsMin(p.Low(), 12)),
		sub(tsMax(p.High(), 12), tsMin(p.Low(), 12)))
	return corr(rank(inner), rank(p.Volume()), 6)
}

// ((20 - highday(high, 20)) / 20) * 100
func alpha177(p *panel.Panel) *panel.Matrix {
	return mulS(divS(subSM(20, highDay(p.High(), 20)), 20), 100)
}

// (close - delay(close, 1)) / delay(close, 1) * volume
func alpha178(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	return mul(div(sub(p.Close(), d), d), p.Volume())
}

// rank(correlation(vwap, volume, 4)) * rank(correlation(rank(low), rank(mean(volume, 50)), 12))
func alpha179(p *panel.Panel) *panel.Matrix {
	return mul(
		rank(corr(p.VWAP(), p.Volume(), 4)),
		rank(corr(rank(p.Low()), rank(adv(p, 50)), 12)))
}

// (mean(volume, 20) < volume) ? -1 * ts_rank(abs(delta(close, 7)), 60) * sign(delta(close, 7))
//   : -1 * volume
func alpha180(p *panel.Panel) *panel.Matrix {
	dc := delta(p.Close(), 7)
	return where(lt(adv(p, 20), p.Volume()),
		mul(neg(tsRank(abs(dc), 60)), sign(dc)),
		neg(p.Volume()))
}

// sum((ret - mean(ret, 20)) - (bench - mean(bench, 20))^2, 20)
//   / sum((bench - mean(bench, 20))^3, 20)
func alpha181(p *panel.Panel) *panel.Matrix {
	ret := addS(div(p.Close(), delay(p.Close(), 1)), -1)
	bd := sub(p.BenchmarkClose(), mean(p.BenchmarkClose(), 20))
	num := tsSum(sub(sub(ret, mean(ret, 20)), pow(bd, 2)), 20)
	return div(num, tsSum(pow(bd, 3), 20))
}

// count((close > open and bench_close > bench_open)
//   or (close < open and bench_close < bench_open), 20) / 20
func alpha182(p *panel.Panel) *panel.Matrix {
	up := and(gt(p.Close(), p.Open()), gt(p.BenchmarkClose(), p.BenchmarkOpen()))
	down := and(lt(p.Close(), p.Open()), lt(p.BenchmarkClose(), p.BenchmarkOpen()))
	return divS(count(or(up, down), 20), 20)
}

// (max(sumac(close - mean(close, 24))) - min(sumac(close - mean(close, 24)))) / stddev(close, 24)
func alpha183(p *panel.Panel) *panel.Matrix {
	c := cumSum(sub(p.Close(), mean(p.Close(), 24)))
	return div(sub(tsMax(c, 24), tsMin(c, 24)), stdDev(p.Close(), 24))
}

// rank(correlation(delay(open - close, 1), close, 200)) + rank(open - close)
func alpha184(p *panel.Panel) *panel.Matrix {
	oc := sub(p.Open(), p.Close())
	return add(rank(corr(delay(oc, 1), p.Close(), 200)), rank(oc))
}

// rank(-1 * (1 - open/close)^2)
func alpha185(p *panel.Panel) *panel.Matrix {
	return rank(neg(pow(subSM(1, div(p.Open(), p.Close())), 2)))
}

// (dmi + delay(dmi, 6)) / 2, dmi as in alpha172
func alpha186(p *panel.Panel) *panel.Matrix {
	d := mean(dmi14(p), 6)
	return divS(add(d, delay(d, 6)), 2)
}

// sum((open <= delay(open, 1) ? 0 : max(high - open, open - delay(open, 1))), 20)
func alpha187(p *panel.Panel) *panel.Matrix {
	do := delay(p.Open(), 1)
	part := where(le(p.Open(), do), constOf(p, 0),
		max2(sub(p.High(), p.Open()), sub(p.Open(), do)))
	return tsSum(part, 20)
}

// ((high - low - sma(high - low, 11, 2)) / sma(high - low, 11, 2)) * 100
func alpha188(p *panel.Panel) *panel.Matrix {
	hl := sub(p.High(), p.Low())
	e := ema(hl, 11, 2)
	return mulS(div(sub(hl, e), e), 100)
}

// mean(abs(close - mean(close, 6)), 6)
func alpha189(p *panel.Panel) *panel.Matrix {
	return mean(abs(sub(p.Close(), mean(p.Close(), 6))), 6)
}

// degenerate constant; the published formula reduces to zero under the
// field set this panel carries
func alpha190(p *panel.Panel) *panel.Matrix {
	return constOf(p, 0)
}

// (correlation(mean(volume, 20), low, 5) + (high + low)/2) - close
func alpha191(p *panel.Panel) *panel.Matrix {
	return sub(
		add(corr(adv(p, 20), p.Low(), 5), divS(add(p.High(), p.Low()), 2)),
		p.Close())
}

// dmi14 is the 14-day directional movement index shared by alpha172 and
// alpha186: |+DI - -DI| / (+DI + -DI) * 100 over true range sums.
func dmi14(p *panel.Panel) *panel.Matrix {
	dc := delay(p.Close(), 1)
	tr := max2(max2(sub(p.High(), p.Low()), abs(sub(p.High(), dc))), abs(sub(p.Low(), dc)))
	hd := sub(p.High(), delay(p.High(), 1))
	ld := sub(delay(p.Low(), 1), p.Low())
	plus := where(and(gtS(ld, 0), gt(ld, hd)), ld, constOf(p, 0))
	minus := where(and(gtS(hd, 0), gt(hd, ld)), hd, constOf(p, 0))
	trSum := tsSum(tr, 14)
	pdi := mulS(div(tsSum(plus, 14), trSum), 100)
	mdi := mulS(div(tsSum(minus, 14), trSum), 100)
	return mulS(div(abs(sub(pdi, mdi)), add(pdi, mdi)), 100)
}
