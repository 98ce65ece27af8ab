package random

import (
	"fmt"
	"strconv"
	"strings"
)

// Intn returns, as an int, a pseudo-random number in [0,n) drawn from src.
// Resolution is 24 bits, so n should stay well below 1<<24 for an even spread.
// It panics if n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	r := int(float64(src.Next()) * float64(n))
	if r >= n {
		r = n - 1
	}
	return r
}

// GetRandomValues picks n distinct positions of numbers without replacement.
// The whole list is returned when n covers it.
func GetRandomValues(src Source, numbers []int, n int) []int {
	size := len(numbers)
	filter := make([]int, size)
	copy(filter, numbers)
	if size == 0 || n >= size {
		return filter
	}
	list := make([]int, 0, n)
	for i := 0; i < n; i++ {
		index := Intn(src, len(filter))
		list = append(list, filter[index])
		filter = append(filter[:index], filter[index+1:]...)
	}
	return list
}

func GetRandomValuesInt64(src Source, numbers []int64, n int) []int64 {
	size := len(numbers)
	filter := make([]int64, size)
	copy(filter, numbers)
	if size == 0 || n >= size {
		return filter
	}
	list := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		index := Intn(src, len(filter))
		list = append(list, filter[index])
		filter = append(filter[:index], filter[index+1:]...)
	}
	return list
}

// GetRandomNumbers splits args on "#" and draws one number from each part
// with GetRandomNumber.
func GetRandomNumbers(src Source, args string) ([]int, error) {
	strs := strings.Split(args, "#")
	ints := make([]int, 0, len(strs))
	for _, s := range strs {
		if len(s) == 0 {
			continue
		}
		v, err := GetRandomNumber(src, s, 1)
		if err != nil {
			return nil, err
		}
		ints = append(ints, v[0])
	}
	return ints, nil
}

// GetRandomNumber draws n values from a comma separated list of entries.
// An entry is a constant "12" or a range "1~10". Any entry may carry a
// weight suffix "1~4:30"; once one does, all must, and the draw is weighted
// and without replacement.
func GetRandomNumber(src Source, args string, n int) ([]int, error) {
	values := strings.Split(args, ",")
	size := len(values)
	if n > size {
		n = size
	}
	numbers := make([]int, size)
	if strings.Index(args, ":") < 0 {
		for i := 0; i < size; i++ {
			v, err := average(src, values[i])
			if err != nil {
				return nil, fmt.Errorf("invalid args:%v,err:%v", args, err)
			}
			numbers[i] = v
		}
		if n == 1 {
			return []int{numbers[Intn(src, size)]}, nil
		}
		return GetRandomValues(src, numbers, n), nil
	}

	weights := make([]int, size)
	var weightSum int
	for i := 0; i < size; i++ {
		end := strings.Index(values[i], ":")
		if end <= 0 {
			return nil, fmt.Errorf("invalid args:%v,err:%v", args, values[i])
		}
		w, err := strconv.Atoi(values[i][end+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid args:%v,err:%v", args, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("invalid args:%v,err:negative weight %d", args, w)
		}
		weights[i] = w
		weightSum += w
		if numbers[i], err = average(src, values[i][:end]); err != nil {
			return nil, fmt.Errorf("invalid args:%v,err:%v", args, err)
		}
	}
	rd := make([]int, 0, n)
	for j := 0; j < n && weightSum > 0; j++ {
		ranNum := Intn(src, weightSum)
		for i := 0; i < len(weights); i++ {
			ranNum -= weights[i]
			if ranNum < 0 {
				rd = append(rd, numbers[i])
				weightSum -= weights[i]
				weights = append(weights[:i], weights[i+1:]...)
				numbers = append(numbers[:i], numbers[i+1:]...)
				break
			}
		}
	}
	return rd, nil
}

// average resolves "1~10" to a value in [1,10], anything else to its integer.
func average(src Source, args string) (int, error) {
	if strings.Index(args, "~") <= 0 {
		return strconv.Atoi(args)
	}
	tmp := strings.SplitN(args, "~", 2)
	v1, err := strconv.Atoi(tmp[0])
	if err != nil {
		return 0, err
	}
	v2, err := strconv.Atoi(tmp[1])
	if err != nil {
		return 0, err
	}
	if v2 < v1 {
		return 0, fmt.Errorf("empty range %v", args)
	}
	return v1 + Intn(src, v2+1-v1), nil
}

type RandItem struct {
	ItemID  int32 `json:"itemId" yaml:"itemId"`
	Num     int32 `json:"num" yaml:"num"`
	TimeOut int32 `json:"timeout" yaml:"timeout"`
	Weight  int32 `json:"weight" yaml:"weight"`
}

// GetRandomItems draws up to n items by weight, without replacement.
// items is not modified.
func GetRandomItems(src Source, items []RandItem, n int) []RandItem {
	pool := make([]RandItem, len(items))
	copy(pool, items)
	if n > len(pool) {
		n = len(pool)
	}
	var weightSum int
	for _, item := range pool {
		weightSum += int(item.Weight)
	}
	rd := make([]RandItem, 0, n)
	for j := 0; j < n && weightSum > 0; j++ {
		ranNum := Intn(src, weightSum)
		for i := 0; i < len(pool); i++ {
			ranNum -= int(pool[i].Weight)
			if ranNum < 0 {
				rd = append(rd, pool[i])
				weightSum -= int(pool[i].Weight)
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return rd
}

//RandInterface 随机数选取器接口
type RandInterface interface {
	Len() int
	Weight(i int) int
	SubValue(indexs []int) interface{}
}

//GetRandomWeight 随机数选取
func GetRandomWeight(src Source, data RandInterface, n int) interface{} {
	size := data.Len()
	if n > size {
		n = size
	}
	var weightSum int
	for j := 0; j < size; j++ {
		weightSum += data.Weight(j)
	}

	picked := make(map[int]bool, n)
	var indexs []int
	for j := 0; j < n && weightSum > 0; j++ {
		ranNum := Intn(src, weightSum)
		for i := 0; i < size; i++ {
			if picked[i] {
				continue
			}
			ranNum -= data.Weight(i)
			if ranNum < 0 {
				picked[i] = true
				indexs = append(indexs, i)
				weightSum -= data.Weight(i)
				break
			}
		}
	}

	return data.SubValue(indexs)
}
