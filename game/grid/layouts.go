package grid

var layouts = map[string]string{
	"tiny": `
%%%%%%%
%P  . %
% %%% %
%.   G%
%%%%%%%`,

	"small": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%`,

	"medium": `
%%%%%%%%%%%%%%%%%%%%
%o...%........%....%
%.%%.%.%%%%%%.%.%%.%
%.%........G.....%.%
%.%.%%.%%  %%.%%.%.%
%......%    %......%
%.%.%%.%%%%%%.%%.%.%
%.%..............%.%
%.%%.%.%%%%%%.%.%%.%
%....%...P....%...o%
%%%%%%%%%%%%%%%%%%%%`,

	"trapped": `
%%%%%%%%
% P   G%
%G%%%%%%
%....  %
%%%%%%%%`,

	"open": `
%%%%%%%%%%%%%%%%%%%%
%..................%
%..................%
%........P.........%
%..................%
%.G..............G.%
%%%%%%%%%%%%%%%%%%%%`,
}
